package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconMore     = "⋯"
	IconCheck    = "✓"
	IconImport   = "⤓"
)

// Text fragments
const (
	BadgeFormat = "(%s)"
)

// Layout sizing
const (
	DialogWidth  float32 = 420
	DialogHeight float32 = 520

	SelectorMinHeight float32 = 240

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 220
	ToastHeight   float32 = 48
	ToastMargin   float32 = 20
	ToastAutoHide         = 2 * time.Second
)

// Timeouts for catalog calls made from the UI
const (
	StoreCallTimeout = 10 * time.Second
)
