package ui

import (
	"context"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/lineup"
	"github.com/ytget/setlist/internal/model"
)

// SongsScreen lists the catalog with search and add/edit/delete actions
type SongsScreen struct {
	window  fyne.Window
	songs   *catalog.SongService
	loc     *Localization
	mobile  *MobileUI
	tabBar  *TabBar
	logger  *zap.Logger
	search  *Debouncer
	changed func()

	mu      sync.Mutex
	all     []model.Song
	visible []model.Song
	term    string

	searchEntry *widget.Entry
	list        *widget.List
	placeholder *widget.Label
	addBtn      *widget.Button
	content     *fyne.Container
}

// NewSongsScreen creates the Songs tab. changed runs after every mutation so
// other screens can reload.
func NewSongsScreen(window fyne.Window, songs *catalog.SongService, loc *Localization, mobile *MobileUI, tabBar *TabBar, search *Debouncer, logger *zap.Logger, changed func()) *SongsScreen {
	s := &SongsScreen{
		window:  window,
		songs:   songs,
		loc:     loc,
		mobile:  mobile,
		tabBar:  tabBar,
		logger:  logger,
		search:  search,
		changed: changed,
	}
	s.createUI()
	return s
}

// Content returns the root object of the screen
func (s *SongsScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *SongsScreen) createUI() {
	s.searchEntry = widget.NewEntry()
	s.searchEntry.SetPlaceHolder(s.loc.GetText(KeySearch))
	s.searchEntry.OnChanged = func(text string) {
		s.search.Trigger(func() {
			fyne.Do(func() { s.applySearch(text) })
		})
	}

	s.list = widget.NewList(
		func() int {
			s.mu.Lock()
			defer s.mu.Unlock()
			return len(s.visible)
		},
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Truncation = fyne.TextTruncateEllipsis
			artist := widget.NewLabel("")
			artist.Truncation = fyne.TextTruncateEllipsis
			key := widget.NewLabel("")
			return container.NewBorder(nil, nil, nil, key, container.NewVBox(title, artist))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			song, ok := s.songAt(id)
			if !ok {
				return
			}
			row := obj.(*fyne.Container)
			texts := row.Objects[0].(*fyne.Container)
			texts.Objects[0].(*widget.Label).SetText(song.Title)
			texts.Objects[1].(*widget.Label).SetText(song.Artist)
			row.Objects[1].(*widget.Label).SetText(fmt.Sprintf(BadgeFormat, song.Key))
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.Unselect(id)
		if song, ok := s.songAt(id); ok {
			s.showActions(song)
		}
	}

	s.placeholder = widget.NewLabel(s.loc.GetText(KeyNoSongs))
	s.placeholder.Alignment = fyne.TextAlignCenter
	s.placeholder.Hide()

	var addObj fyne.CanvasObject
	s.addBtn, addObj = s.mobile.CreateMobileButton(s.loc.GetText(KeyAdd), s.onAdd)
	s.addBtn.Importance = widget.HighImportance

	top := container.NewBorder(nil, nil, nil, addObj, s.searchEntry)
	s.content = container.NewBorder(top, nil, nil, nil, container.NewStack(s.list, container.NewCenter(s.placeholder)))
}

// Reload reads the catalog and re-applies the current search
func (s *SongsScreen) Reload() {
	ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
	defer cancel()

	songs, err := s.songs.List(ctx)
	if err != nil {
		s.logger.Error("Failed to load songs", zap.Error(err))
		showError(s.window, s.loc.GetText(KeyErrorLoading), err)
		return
	}

	s.mu.Lock()
	s.all = songs
	term := s.term
	s.mu.Unlock()

	s.applySearch(term)
}

// applySearch filters the loaded songs by term and refreshes the list
func (s *SongsScreen) applySearch(term string) {
	s.mu.Lock()
	s.term = term
	s.visible = lineup.Filter(s.all, term)
	empty := len(s.visible) == 0
	total := len(s.all)
	s.mu.Unlock()

	switch {
	case !empty:
		s.placeholder.Hide()
	case total == 0:
		s.placeholder.SetText(s.loc.GetText(KeyNoSongs))
		s.placeholder.Show()
	default:
		s.placeholder.SetText(s.loc.GetText(KeyNoMatches))
		s.placeholder.Show()
	}
	s.list.Refresh()
}

// RefreshTexts re-applies localized strings
func (s *SongsScreen) RefreshTexts() {
	s.searchEntry.SetPlaceHolder(s.loc.GetText(KeySearch))
	s.addBtn.SetText(s.loc.GetText(KeyAdd))
	s.applySearch(s.currentTerm())
}

func (s *SongsScreen) currentTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term
}

func (s *SongsScreen) songAt(id widget.ListItemID) (model.Song, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.visible) {
		return model.Song{}, false
	}
	return s.visible[id], true
}

func (s *SongsScreen) showActions(song model.Song) {
	ShowActionSheet(s.window, s.tabBar, s.loc, song.Line(), []SheetAction{
		{Label: s.loc.GetText(KeyEdit), Importance: widget.MediumImportance, OnTapped: func() { s.onEdit(song) }},
		{Label: s.loc.GetText(KeyDelete), Importance: widget.DangerImportance, OnTapped: func() { s.onDelete(song) }},
	})
}

func (s *SongsScreen) onAdd() {
	NewSongForm(s.window, s.loc, s.mobile, model.Song{}, func(song model.Song) error {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if _, err := s.songs.Add(ctx, song); err != nil {
			return err
		}
		s.afterChange()
		return nil
	}).Show()
}

func (s *SongsScreen) onEdit(song model.Song) {
	NewSongForm(s.window, s.loc, s.mobile, song, func(updated model.Song) error {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if _, err := s.songs.Edit(ctx, updated); err != nil {
			return err
		}
		s.afterChange()
		return nil
	}).Show()
}

func (s *SongsScreen) onDelete(song model.Song) {
	confirm(s.window, s.loc, s.loc.GetText(KeyConfirmDeleteSong), func() {
		ctx, cancel := context.WithTimeout(context.Background(), StoreCallTimeout)
		defer cancel()
		if err := s.songs.Delete(ctx, song.ID); err != nil {
			s.logger.Error("Failed to delete song", zap.String("id", song.ID), zap.Error(err))
			showError(s.window, s.loc.GetText(KeyErrorSaving), err)
			return
		}
		s.afterChange()
	})
}

func (s *SongsScreen) afterChange() {
	s.Reload()
	if s.changed != nil {
		s.changed()
	}
}
