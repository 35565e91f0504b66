package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/setlist/internal/model"
	"github.com/ytget/setlist/internal/store"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeySearchDebounceMs = "search_debounce_ms"
	KeyRefreshDelayMs   = "refresh_delay_ms"
	KeyDefaultImportKey = "default_import_key"
	KeyStorageBackend   = "storage_backend"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultSearchDebounce   = 500 * time.Millisecond
	DefaultRefreshDelay     = 2 * time.Second
	DefaultImportKey        = "C"
	DefaultStorageBackend   = store.KindPreferences
	MaxSearchDebounce       = 2 * time.Second
	MaxRefreshDelay         = 10 * time.Second
	unsetDurationPreference = -1
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetSearchDebounce returns how long search input waits before filtering
func (s *Settings) GetSearchDebounce() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeySearchDebounceMs, unsetDurationPreference)
	if ms < 0 {
		return DefaultSearchDebounce
	}
	return time.Duration(ms) * time.Millisecond
}

// SetSearchDebounce sets the search delay, clamped to [0, MaxSearchDebounce]
func (s *Settings) SetSearchDebounce(d time.Duration) {
	s.app.Preferences().SetInt(KeySearchDebounceMs, int(clampDuration(d, MaxSearchDebounce).Milliseconds()))
}

// GetRefreshDelay returns the pause before the schedule list reloads
func (s *Settings) GetRefreshDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyRefreshDelayMs, unsetDurationPreference)
	if ms < 0 {
		return DefaultRefreshDelay
	}
	return time.Duration(ms) * time.Millisecond
}

// SetRefreshDelay sets the refresh delay, clamped to [0, MaxRefreshDelay]
func (s *Settings) SetRefreshDelay(d time.Duration) {
	s.app.Preferences().SetInt(KeyRefreshDelayMs, int(clampDuration(d, MaxRefreshDelay).Milliseconds()))
}

// GetDefaultImportKey returns the key given to imported songs
func (s *Settings) GetDefaultImportKey() string {
	key := s.app.Preferences().String(KeyDefaultImportKey)
	if key == "" || len(key) > model.MaxKeyLength {
		return DefaultImportKey
	}
	return key
}

// SetDefaultImportKey sets the import key. Invalid keys reset to the default.
func (s *Settings) SetDefaultImportKey(key string) {
	if key == "" || len(key) > model.MaxKeyLength {
		key = DefaultImportKey
	}
	s.app.Preferences().SetString(KeyDefaultImportKey, key)
}

// GetStorageBackend returns where the app keeps its data
func (s *Settings) GetStorageBackend() store.Kind {
	kind := store.Kind(s.app.Preferences().String(KeyStorageBackend))
	for _, k := range s.GetStorageBackendOptions() {
		if k == kind {
			return kind
		}
	}
	return DefaultStorageBackend
}

// SetStorageBackend sets the storage backend used on next start
func (s *Settings) SetStorageBackend(kind store.Kind) {
	s.app.Preferences().SetString(KeyStorageBackend, string(kind))
}

// GetStorageBackendOptions returns backends usable from the app
func (s *Settings) GetStorageBackendOptions() []store.Kind {
	return []store.Kind{store.KindPreferences, store.KindSQLite}
}

// GetKeyOptions returns the musical keys offered in pickers
func (s *Settings) GetKeyOptions() []string {
	return append([]string(nil), model.Keys...)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampDuration(d, max time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > max {
		return max
	}
	return d
}
