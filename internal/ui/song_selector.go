package ui

import (
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/setlist/internal/lineup"
	"github.com/ytget/setlist/internal/model"
)

// SongSelector is a searchable list where tapping a song toggles it in the
// selection. The selection keeps the order songs were picked in.
type SongSelector struct {
	loc    *Localization
	search *Debouncer

	mu       sync.Mutex
	all      []model.Song
	visible  []model.Song
	selected []string

	OnChanged func(selected []string)

	searchEntry *widget.Entry
	list        *widget.List
	countLabel  *widget.Label
	resetBtn    *widget.Button
	content     *fyne.Container
}

// NewSongSelector creates a selector over songs with selected preselected
func NewSongSelector(loc *Localization, search *Debouncer, songs []model.Song, selected []string) *SongSelector {
	s := &SongSelector{
		loc:      loc,
		search:   search,
		all:      songs,
		visible:  lineup.Filter(songs, ""),
		selected: append([]string(nil), selected...),
	}
	s.createUI()
	s.updateCount()
	return s
}

// Content returns the root object of the selector
func (s *SongSelector) Content() fyne.CanvasObject {
	return s.content
}

// Selected returns the picked song IDs in pick order
func (s *SongSelector) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.selected...)
}

func (s *SongSelector) createUI() {
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
			check := widget.NewLabel(IconCheck)
			check.Importance = widget.HighImportance
			text := widget.NewLabel("")
			text.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, check, nil, text)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			song, picked, ok := s.rowAt(id)
			if !ok {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(song.Line())
			check := row.Objects[1].(*widget.Label)
			if picked {
				check.SetText(IconCheck)
			} else {
				check.SetText(" ")
			}
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.Unselect(id)
		if song, _, ok := s.rowAt(id); ok {
			s.toggle(song.ID)
		}
	}

	s.countLabel = widget.NewLabel("")
	s.resetBtn = widget.NewButton(s.loc.GetText(KeyReset), s.reset)
	s.resetBtn.Importance = widget.LowImportance

	minHeight := canvas.NewRectangle(color.Transparent)
	minHeight.SetMinSize(fyne.NewSize(0, SelectorMinHeight))
	listArea := container.NewStack(minHeight, s.list)

	header := container.NewHBox(s.countLabel, layout.NewSpacer(), s.resetBtn)
	s.content = container.NewBorder(container.NewVBox(s.searchEntry, header), nil, nil, nil, listArea)
}

func (s *SongSelector) rowAt(id widget.ListItemID) (model.Song, bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 0 || id >= len(s.visible) {
		return model.Song{}, false, false
	}
	song := s.visible[id]
	for _, sel := range s.selected {
		if sel == song.ID {
			return song, true, true
		}
	}
	return song, false, true
}

func (s *SongSelector) applySearch(term string) {
	s.mu.Lock()
	s.visible = lineup.Filter(s.all, term)
	s.mu.Unlock()
	s.list.Refresh()
}

func (s *SongSelector) toggle(id string) {
	s.mu.Lock()
	s.selected = lineup.Toggle(s.selected, id)
	s.mu.Unlock()
	s.changed()
}

func (s *SongSelector) reset() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
	s.changed()
}

func (s *SongSelector) changed() {
	s.updateCount()
	s.list.Refresh()
	if s.OnChanged != nil {
		s.OnChanged(s.Selected())
	}
}

func (s *SongSelector) updateCount() {
	s.mu.Lock()
	n := len(s.selected)
	s.mu.Unlock()
	s.countLabel.SetText(fmt.Sprintf(s.loc.GetText(KeySelectedCount), n))
}
