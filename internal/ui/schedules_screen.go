package ui

import (
	"context"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/lineup"
	"github.com/ytget/setlist/internal/model"
)

// SchedulesScreen shows every schedule as a card with its resolved lineup
type SchedulesScreen struct {
	window    fyne.Window
	app       fyne.App
	catalog   *catalog.Catalog
	loc       *Localization
	mobile    *MobileUI
	tabBar    *TabBar
	logger    *zap.Logger
	searchIn  func() time.Duration
	refreshIn func() time.Duration

	mu         sync.Mutex
	entries    []lineup.Entry
	refreshing bool

	cards       *fyne.Container
	placeholder *widget.Label
	addBtn      *widget.Button
	refreshBtn  *widget.Button
	activity    *widget.ProgressBarInfinite
	content     *fyne.Container
}

// NewSchedulesScreen creates the Schedules tab. searchDelay and refreshDelay
// are read on every use so settings changes apply immediately.
func NewSchedulesScreen(window fyne.Window, app fyne.App, c *catalog.Catalog, loc *Localization, mobile *MobileUI, tabBar *TabBar, logger *zap.Logger, searchDelay, refreshDelay func() time.Duration) *SchedulesScreen {
	s := &SchedulesScreen{
		window:    window,
		app:       app,
		catalog:   c,
		loc:       loc,
		mobile:    mobile,
		tabBar:    tabBar,
		logger:    logger,
		searchIn:  searchDelay,
		refreshIn: refreshDelay,
	}
	s.createUI()
	return s
}

// Content returns the root object of the screen
func (s *SchedulesScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *SchedulesScreen) createUI() {
	var addObj fyne.CanvasObject
	s.addBtn, addObj = s.mobile.CreateMobileButton(s.loc.GetText(KeyAdd), s.onAdd)
	s.addBtn.Importance = widget.HighImportance

	s.refreshBtn = widget.NewButton(s.loc.GetText(KeyRefresh), s.Refresh)
	s.activity = widget.NewProgressBarInfinite()
	s.activity.Stop()
	s.activity.Hide()

	s.placeholder = widget.NewLabel(s.loc.GetText(KeyNoSchedules))
	s.placeholder.Alignment = fyne.TextAlignCenter
	s.placeholder.Hide()

	s.cards = container.NewVBox()

	top := container.NewVBox(
		container.NewHBox(s.refreshBtn, layout.NewSpacer(), addObj),
		s.activity,
	)
	s.content = container.NewBorder(top, nil, nil, nil,
		container.NewStack(container.NewVScroll(s.cards), container.NewCenter(s.placeholder)))
}

// Reload reads schedules and songs and rebuilds the cards
func (s *SchedulesScreen) Reload() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	entries, err := s.catalog.Schedules.Board(ctx)
	if err != nil {
		s.logger.Error("Failed to load schedules", zap.Error(err))
		showError(s.window, s.loc.GetText(KeyErrorLoading), err)
		return
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()

	s.render(entries)
}

// Refresh waits for the configured delay, then reloads. Taps while a
// refresh is pending are ignored.
func (s *SchedulesScreen) Refresh() {
	s.mu.Lock()
	if s.refreshing {
		s.mu.Unlock()
		return
	}
	s.refreshing = true
	s.mu.Unlock()

	s.refreshBtn.Disable()
	s.activity.Show()
	s.activity.Start()

	time.AfterFunc(s.refreshIn(), func() {
		fyne.Do(func() {
			s.Reload()
			s.activity.Stop()
			s.activity.Hide()
			s.refreshBtn.Enable()

			s.mu.Lock()
			s.refreshing = false
			s.mu.Unlock()
		})
	})
}

// RefreshTexts re-applies localized strings
func (s *SchedulesScreen) RefreshTexts() {
	s.addBtn.SetText(s.loc.GetText(KeyAdd))
	s.refreshBtn.SetText(s.loc.GetText(KeyRefresh))
	s.placeholder.SetText(s.loc.GetText(KeyNoSchedules))

	s.mu.Lock()
	entries := s.entries
	s.mu.Unlock()
	s.render(entries)
}

func (s *SchedulesScreen) render(entries []lineup.Entry) {
	s.cards.RemoveAll()
	for _, e := range entries {
		s.cards.Add(s.createCard(e))
	}
	if len(entries) == 0 {
		s.placeholder.Show()
	} else {
		s.placeholder.Hide()
	}
	s.cards.Refresh()
}

func (s *SchedulesScreen) createCard(entry lineup.Entry) fyne.CanvasObject {
	lines := make([]string, 0, len(entry.Songs))
	for _, song := range entry.Songs {
		lines = append(lines, song.Line())
	}
	body := widget.NewLabel(strings.Join(lines, "\n"))
	body.Wrapping = fyne.TextWrapWord

	copyBtn := widget.NewButton(IconCopy+" "+s.loc.GetText(KeyCopy), func() { s.onCopy(entry) })
	copyBtn.Importance = widget.LowImportance
	moreBtn := widget.NewButton(IconMore, func() { s.showActions(entry.Schedule) })
	moreBtn.Importance = widget.LowImportance

	actions := container.NewHBox(layout.NewSpacer(), copyBtn, moreBtn)
	return widget.NewCard(entry.Schedule.ServiceName, "", container.NewVBox(body, actions))
}

func (s *SchedulesScreen) onCopy(entry lineup.Entry) {
	text := lineup.ExportText(entry.Schedule, entry.Songs)
	s.app.Clipboard().SetContent(text)
	s.logger.Debug("Schedule copied", zap.String("id", entry.Schedule.ID))
	showToast(s.window, s.loc.GetText(KeyCopied))
}

func (s *SchedulesScreen) showActions(schedule model.Schedule) {
	ShowActionSheet(s.window, s.tabBar, s.loc, schedule.ServiceName, []SheetAction{
		{Label: s.loc.GetText(KeyEdit), Importance: widget.MediumImportance, OnTapped: func() { s.onEdit(schedule) }},
		{Label: s.loc.GetText(KeyDelete), Importance: widget.DangerImportance, OnTapped: func() { s.onDelete(schedule) }},
	})
}

func (s *SchedulesScreen) loadSongs() ([]model.Song, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	songs, err := s.catalog.Songs.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load songs", zap.Error(err))
		showError(s.window, s.loc.GetText(KeyErrorLoading), err)
		return nil, false
	}
	return songs, true
}

// newEditor opens an editor with its own search debouncer
func (s *SchedulesScreen) newEditor(songs []model.Song, schedule model.Schedule, onSubmit func(model.Schedule) error) *ScheduleEditor {
	return NewScheduleEditor(s.window, s.loc, s.mobile, NewDebouncer(s.searchIn()), songs, schedule, onSubmit)
}

func (s *SchedulesScreen) onAdd() {
	songs, ok := s.loadSongs()
	if !ok {
		return
	}
	s.newEditor(songs, model.Schedule{}, func(sc model.Schedule) error {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if _, err := s.catalog.Schedules.Add(ctx, sc); err != nil {
			return err
		}
		s.Reload()
		return nil
	}).Show()
}

func (s *SchedulesScreen) onEdit(schedule model.Schedule) {
	songs, ok := s.loadSongs()
	if !ok {
		return
	}
	s.newEditor(songs, schedule, func(sc model.Schedule) error {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if _, err := s.catalog.Schedules.Edit(ctx, sc); err != nil {
			return err
		}
		s.Reload()
		return nil
	}).Show()
}

func (s *SchedulesScreen) onDelete(schedule model.Schedule) {
	confirm(s.window, s.loc, s.loc.GetText(KeyConfirmDeleteSched), func() {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if err := s.catalog.Schedules.Delete(ctx, schedule.ID); err != nil {
			s.logger.Error("Failed to delete schedule", zap.String("id", schedule.ID), zap.Error(err))
			showError(s.window, s.loc.GetText(KeyErrorSaving), err)
			return
		}
		s.Reload()
	})
}
