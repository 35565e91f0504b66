package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/config"
	"github.com/ytget/setlist/internal/importer"
	"github.com/ytget/setlist/internal/logging"
)

// Deps are the services the UI works on
type Deps struct {
	Catalog  *catalog.Catalog
	Importer *importer.Importer
	Settings *config.Settings
	Logger   *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	deps         Deps
	logger       *zap.Logger
	localization *Localization
	mobile       *MobileUI
	tabBar       *TabBar
	songSearch   *Debouncer

	titleLabel *widget.Label
	tabs       *container.AppTabs
	songsTab   *container.TabItem
	schedTab   *container.TabItem
	songs      *SongsScreen
	schedules  *SchedulesScreen
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, deps Deps) *RootUI {
	if deps.Settings == nil {
		deps.Settings = config.NewSettings(app)
	}

	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		deps:         deps,
		logger:       logging.OrNop(deps.Logger),
		localization: localization,
		mobile:       NewMobileUI(app),
		tabBar:       NewTabBar(),
		songSearch:   NewDebouncer(deps.Settings.GetSearchDebounce()),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.songs.Reload()
	ui.schedules.Reload()

	ui.logger.Info("UI setup completed")
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.schedules = NewSchedulesScreen(ui.window, ui.app, ui.deps.Catalog, ui.localization, ui.mobile,
		ui.tabBar, ui.logger, ui.deps.Settings.GetSearchDebounce, ui.deps.Settings.GetRefreshDelay)
	ui.songs = NewSongsScreen(ui.window, ui.deps.Catalog.Songs, ui.localization, ui.mobile,
		ui.tabBar, ui.songSearch, ui.logger, ui.schedules.Reload)

	ui.songsTab = container.NewTabItem(ui.localization.GetText(KeyTabSongs), ui.songs.Content())
	ui.schedTab = container.NewTabItem(ui.localization.GetText(KeyTabSchedules), ui.schedules.Content())
	ui.tabs = container.NewAppTabs(ui.songsTab, ui.schedTab)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item == ui.schedTab {
			ui.schedules.Reload()
		}
	}

	ui.tabBar.OnChange(ui.applyTabBar)

	// Mobile has no main menu, so import and settings are reachable here too
	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	importBtn := widget.NewButton(IconImport, ui.onShowImport)
	importBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	topBar := container.NewBorder(nil, nil, nil, container.NewHBox(importBtn, settingsBtn), ui.titleLabel)

	ui.window.SetContent(container.NewBorder(topBar, nil, nil, nil, ui.tabs))
}

// applyTabBar disables every tab except the selected one while hidden
func (ui *RootUI) applyTabBar(hidden bool) {
	selected := ui.tabs.SelectedIndex()
	for i := range ui.tabs.Items {
		if i == selected {
			continue
		}
		if hidden {
			ui.tabs.DisableIndex(i)
		} else {
			ui.tabs.EnableIndex(i)
		}
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	importItem := fyne.NewMenuItem(ui.localization.GetText(KeyImportPlaylist), ui.onShowImport)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), importItem, settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.deps.Settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.songsTab.Text = ui.localization.GetText(KeyTabSongs)
	ui.schedTab.Text = ui.localization.GetText(KeyTabSchedules)
	ui.tabs.Refresh()
	ui.songs.RefreshTexts()
	ui.schedules.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.deps.Settings, ui.localization, ui.window, func() {
		ui.songSearch.SetDelay(ui.deps.Settings.GetSearchDebounce())
		ui.localization.SetLanguage(ui.deps.Settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		showToast(ui.window, ui.localization.GetText(KeySettingsSaved))
	}).Show()
}

// onShowImport shows the playlist import dialog
func (ui *RootUI) onShowImport() {
	if ui.deps.Importer == nil {
		return
	}
	NewImportDialog(ui.window, ui.localization, ui.deps.Importer,
		ui.deps.Settings.GetDefaultImportKey(), ui.deps.Settings.GetKeyOptions(), ui.logger,
		func(importer.Result) {
			ui.songs.Reload()
			ui.schedules.Reload()
		}).Show()
}
