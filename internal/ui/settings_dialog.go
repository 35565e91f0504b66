package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/setlist/internal/config"
	"github.com/ytget/setlist/internal/store"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	languageSelect *widget.Select
	languageCodes  map[string]string
	debounceEntry  *widget.Entry
	refreshEntry   *widget.Entry
	keySelect      *widget.Select
	storageSelect  *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were written.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection shows display names, stores codes
	sd.languageCodes = make(map[string]string)
	var languageNames []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageNames = append(languageNames, name)
	}
	sort.Strings(languageNames)
	sd.languageSelect = widget.NewSelect(languageNames, nil)

	sd.debounceEntry = widget.NewEntry()
	sd.debounceEntry.SetPlaceHolder("0-" + strconv.FormatInt(config.MaxSearchDebounce.Milliseconds(), 10))

	sd.refreshEntry = widget.NewEntry()
	sd.refreshEntry.SetPlaceHolder("0-" + strconv.FormatInt(config.MaxRefreshDelay.Milliseconds(), 10))

	sd.keySelect = widget.NewSelect(sd.settings.GetKeyOptions(), nil)

	var storageOptions []string
	for _, kind := range sd.settings.GetStorageBackendOptions() {
		storageOptions = append(storageOptions, string(kind))
	}
	sd.storageSelect = widget.NewSelect(storageOptions, nil)

	restartNote := widget.NewLabel(sd.loc.GetText(KeyRestartRequired))
	restartNote.Importance = widget.LowImportance
	restartNote.Wrapping = fyne.TextWrapWord

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.loc.GetText(KeySearchDebounce)+":"),
		sd.debounceEntry,

		widget.NewLabel(sd.loc.GetText(KeyRefreshDelay)+":"),
		sd.refreshEntry,

		widget.NewLabel(sd.loc.GetText(KeyDefaultKey)+":"),
		sd.keySelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.loc.GetText(KeyStorageBackend)+":"),
		sd.storageSelect,
		restartNote,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogWidth, DialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.debounceEntry.SetText(strconv.FormatInt(sd.settings.GetSearchDebounce().Milliseconds(), 10))
	sd.refreshEntry.SetText(strconv.FormatInt(sd.settings.GetRefreshDelay().Milliseconds(), 10))
	sd.keySelect.SetSelected(sd.settings.GetDefaultImportKey())
	sd.storageSelect.SetSelected(string(sd.settings.GetStorageBackend()))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if ms, ok := parseMillis(sd.debounceEntry.Text); ok {
		sd.settings.SetSearchDebounce(ms)
	}
	if ms, ok := parseMillis(sd.refreshEntry.Text); ok {
		sd.settings.SetRefreshDelay(ms)
	}

	if sd.keySelect.Selected != "" {
		sd.settings.SetDefaultImportKey(sd.keySelect.Selected)
	}

	if sd.storageSelect.Selected != "" {
		sd.settings.SetStorageBackend(store.Kind(sd.storageSelect.Selected))
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func parseMillis(text string) (time.Duration, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	ms, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}
