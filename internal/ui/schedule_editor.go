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

// ScheduleEditor is the add/edit schedule dialog
type ScheduleEditor struct {
	window   fyne.Window
	loc      *Localization
	mobile   *MobileUI
	schedule model.Schedule
	onSubmit func(model.Schedule) error

	nameEntry *widget.Entry
	nameErr   *widget.Label
	songsErr  *widget.Label
	selector  *SongSelector

	dialog dialog.Dialog
}

// NewScheduleEditor creates an editor for schedule over the catalog songs.
// An empty schedule ID means a new schedule.
func NewScheduleEditor(window fyne.Window, loc *Localization, mobile *MobileUI, search *Debouncer, songs []model.Song, schedule model.Schedule, onSubmit func(model.Schedule) error) *ScheduleEditor {
	e := &ScheduleEditor{
		window:   window,
		loc:      loc,
		mobile:   mobile,
		schedule: schedule,
		onSubmit: onSubmit,
		selector: NewSongSelector(loc, search, songs, schedule.Songs),
	}
	e.createUI()
	return e
}

// Show displays the editor
func (e *ScheduleEditor) Show() {
	e.dialog.Show()
}

func (e *ScheduleEditor) createUI() {
	e.nameEntry = widget.NewEntry()
	e.nameEntry.SetPlaceHolder(e.loc.GetText(KeyServiceName))
	e.nameEntry.SetText(e.schedule.ServiceName)

	e.nameErr = newErrorLabel()
	e.songsErr = newErrorLabel()
	e.selector.OnChanged = func(selected []string) {
		if len(selected) > 0 {
			setFieldError(e.songsErr, e.loc, "")
		}
	}

	heading := KeyNewSchedule
	if e.schedule.ID != "" {
		heading = KeyEditSchedule
	}

	saveBtn := widget.NewButton(e.loc.GetText(KeySave), e.submit)
	saveBtn.Importance = widget.HighImportance
	cancelBtn := widget.NewButton(e.loc.GetText(KeyCancel), func() { e.dialog.Hide() })

	top := container.NewVBox(
		widget.NewLabel(e.loc.GetText(KeyServiceName)),
		e.nameEntry,
		e.nameErr,
		widget.NewLabel(e.loc.GetText(KeySongs)),
	)
	bottom := container.NewVBox(
		e.songsErr,
		widget.NewSeparator(),
		container.NewGridWithColumns(2, cancelBtn, saveBtn),
	)
	content := container.NewBorder(top, bottom, nil, nil, e.selector.Content())

	e.dialog = dialog.NewCustomWithoutButtons(e.loc.GetText(heading), content, e.window)
	e.dialog.SetOnClosed(e.selector.search.Stop)
	e.dialog.Resize(e.mobile.DialogSize(e.window))
}

func (e *ScheduleEditor) values() model.Schedule {
	return model.Schedule{
		ID:          e.schedule.ID,
		ServiceName: strings.TrimSpace(e.nameEntry.Text),
		Songs:       e.selector.Selected(),
	}
}

func (e *ScheduleEditor) validate() bool {
	err := e.values().Validate()

	var verrs model.ValidationErrors
	if !errors.As(err, &verrs) {
		verrs = nil
	}
	setFieldError(e.nameErr, e.loc, verrs.Field(model.FieldServiceName))
	setFieldError(e.songsErr, e.loc, verrs.Field(model.FieldSongs))

	return err == nil
}

func (e *ScheduleEditor) submit() {
	if !e.validate() {
		return
	}
	schedule := e.values()
	confirm(e.window, e.loc, e.loc.GetText(KeyAreYouSure), func() {
		if err := e.onSubmit(schedule); err != nil {
			showError(e.window, e.loc.GetText(KeyErrorSaving), err)
			return
		}
		e.dialog.Hide()
	})
}
