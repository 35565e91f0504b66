package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// DialogSize returns the size for form dialogs: most of the window on
// mobile, a fixed size on desktop.
func (m *MobileUI) DialogSize(window fyne.Window) fyne.Size {
	if !m.IsMobileDevice() {
		return fyne.NewSize(DialogWidth, DialogHeight)
	}
	s := window.Canvas().Size()
	return fyne.NewSize(s.Width*0.95, s.Height*0.85)
}

// CreateMobileButton creates a button tall enough for touch on mobile. It
// returns the button and the object to place in the layout.
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) (*widget.Button, fyne.CanvasObject) {
	btn := widget.NewButton(text, onTapped)
	if !m.IsMobileDevice() {
		return btn, btn
	}
	return btn, container.New(layout.NewGridWrapLayout(fyne.NewSize(MinTouchTargetSize*2, MobileButtonHeight)), btn)
}
