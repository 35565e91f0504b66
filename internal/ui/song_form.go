package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/setlist/internal/model"
)

// SongForm is the add/edit song dialog with inline validation
type SongForm struct {
	window   fyne.Window
	loc      *Localization
	mobile   *MobileUI
	song     model.Song
	onSubmit func(model.Song) error

	titleEntry  *widget.Entry
	artistEntry *widget.Entry
	keyEntry    *widget.SelectEntry
	titleErr    *widget.Label
	artistErr   *widget.Label
	keyErr      *widget.Label

	dialog dialog.Dialog
}

// NewSongForm creates a form prefilled with song. An empty ID means a new song.
func NewSongForm(window fyne.Window, loc *Localization, mobile *MobileUI, song model.Song, onSubmit func(model.Song) error) *SongForm {
	f := &SongForm{
		window:   window,
		loc:      loc,
		mobile:   mobile,
		song:     song,
		onSubmit: onSubmit,
	}
	f.createUI()
	return f
}

// Show displays the form
func (f *SongForm) Show() {
	f.dialog.Show()
}

func (f *SongForm) createUI() {
	f.titleEntry = widget.NewEntry()
	f.titleEntry.SetPlaceHolder(f.loc.GetText(KeyTitle))
	f.titleEntry.SetText(f.song.Title)

	f.artistEntry = widget.NewEntry()
	f.artistEntry.SetPlaceHolder(f.loc.GetText(KeyArtist))
	f.artistEntry.SetText(f.song.Artist)

	f.keyEntry = widget.NewSelectEntry(model.Keys)
	f.keyEntry.SetPlaceHolder(f.loc.GetText(KeyKey))
	f.keyEntry.SetText(f.song.Key)

	f.titleErr = newErrorLabel()
	f.artistErr = newErrorLabel()
	f.keyErr = newErrorLabel()

	heading := KeyNewSong
	if f.song.ID != "" {
		heading = KeyEditSong
	}

	saveBtn := widget.NewButton(f.loc.GetText(KeySave), f.submit)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(f.loc.GetText(KeyCancel), func() { f.dialog.Hide() })

	content := container.NewVBox(
		widget.NewLabel(f.loc.GetText(KeyTitle)),
		f.titleEntry,
		f.titleErr,
		widget.NewLabel(f.loc.GetText(KeyArtist)),
		f.artistEntry,
		f.artistErr,
		widget.NewLabel(f.loc.GetText(KeyKey)),
		f.keyEntry,
		f.keyErr,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, cancelBtn, saveBtn),
	)

	f.dialog = dialog.NewCustomWithoutButtons(f.loc.GetText(heading), content, f.window)
	f.dialog.Resize(f.mobile.DialogSize(f.window))
}

// values returns the song described by the form fields
func (f *SongForm) values() model.Song {
	return model.Song{
		ID:     f.song.ID,
		Title:  strings.TrimSpace(f.titleEntry.Text),
		Artist: strings.TrimSpace(f.artistEntry.Text),
		Key:    strings.TrimSpace(f.keyEntry.Text),
	}
}

// validate shows inline messages and reports whether the form is valid
func (f *SongForm) validate() bool {
	err := f.values().Validate()

	var verrs model.ValidationErrors
	if !errors.As(err, &verrs) {
		verrs = nil
	}
	setFieldError(f.titleErr, f.loc, verrs.Field(model.FieldTitle))
	setFieldError(f.artistErr, f.loc, verrs.Field(model.FieldArtist))
	setFieldError(f.keyErr, f.loc, verrs.Field(model.FieldKey))

	return err == nil
}

func (f *SongForm) submit() {
	if !f.validate() {
		return
	}
	song := f.values()
	confirm(f.window, f.loc, f.loc.GetText(KeyAreYouSure), func() {
		if err := f.onSubmit(song); err != nil {
			showError(f.window, f.loc.GetText(KeyErrorSaving), err)
			return
		}
		f.dialog.Hide()
	})
}

func newErrorLabel() *widget.Label {
	l := widget.NewLabel("")
	l.Importance = widget.DangerImportance
	l.Hide()
	return l
}

func setFieldError(label *widget.Label, loc *Localization, msg string) {
	if msg == "" {
		label.SetText("")
		label.Hide()
		return
	}
	label.SetText(loc.ValidationText(msg))
	label.Show()
}
