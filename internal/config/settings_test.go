package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/setlist/internal/store"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestSearchDebounce(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetSearchDebounce(); got != DefaultSearchDebounce {
		t.Errorf("Expected default debounce %v, got %v", DefaultSearchDebounce, got)
	}

	tests := []struct {
		in       time.Duration
		expected time.Duration
	}{
		{300 * time.Millisecond, 300 * time.Millisecond},
		{0, 0},
		{-time.Second, 0},
		{5 * time.Second, MaxSearchDebounce},
	}

	for _, tt := range tests {
		settings.SetSearchDebounce(tt.in)
		if got := settings.GetSearchDebounce(); got != tt.expected {
			t.Errorf("SetSearchDebounce(%v) then GetSearchDebounce() = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestRefreshDelay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetRefreshDelay(); got != DefaultRefreshDelay {
		t.Errorf("Expected default refresh delay %v, got %v", DefaultRefreshDelay, got)
	}

	settings.SetRefreshDelay(time.Minute)
	if got := settings.GetRefreshDelay(); got != MaxRefreshDelay {
		t.Errorf("Refresh delay should be clamped to %v, got %v", MaxRefreshDelay, got)
	}

	settings.SetRefreshDelay(0)
	if got := settings.GetRefreshDelay(); got != 0 {
		t.Errorf("Refresh delay 0 should be kept, got %v", got)
	}
}

func TestDefaultImportKey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetDefaultImportKey(); got != DefaultImportKey {
		t.Errorf("Expected default import key %s, got %s", DefaultImportKey, got)
	}

	settings.SetDefaultImportKey("F#")
	if got := settings.GetDefaultImportKey(); got != "F#" {
		t.Errorf("Expected import key F#, got %s", got)
	}

	settings.SetDefaultImportKey("Bbm7")
	if got := settings.GetDefaultImportKey(); got != DefaultImportKey {
		t.Errorf("Invalid key should reset to %s, got %s", DefaultImportKey, got)
	}
}

func TestStorageBackend(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetStorageBackend(); got != DefaultStorageBackend {
		t.Errorf("Expected default backend %s, got %s", DefaultStorageBackend, got)
	}

	settings.SetStorageBackend(store.KindSQLite)
	if got := settings.GetStorageBackend(); got != store.KindSQLite {
		t.Errorf("Expected backend sqlite, got %s", got)
	}

	// Redis is CLI-only and falls back to the default
	settings.SetStorageBackend(store.KindRedis)
	if got := settings.GetStorageBackend(); got != DefaultStorageBackend {
		t.Errorf("Unsupported backend should fall back to %s, got %s", DefaultStorageBackend, got)
	}
}

func TestGetKeyOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetKeyOptions()
	if len(options) != 12 {
		t.Fatalf("Expected 12 key options, got %d", len(options))
	}
	options[0] = "X"
	if settings.GetKeyOptions()[0] != "A" {
		t.Error("GetKeyOptions should return a copy")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
