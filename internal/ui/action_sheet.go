package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// SheetAction is one button of an action sheet
type SheetAction struct {
	Label      string
	Importance widget.Importance
	OnTapped   func()
}

// ShowActionSheet opens a list of actions for the selected item. The tab bar
// is hidden while the sheet is open and shown again when it closes.
func ShowActionSheet(window fyne.Window, tabBar *TabBar, loc *Localization, title string, actions []SheetAction) dialog.Dialog {
	box := container.NewVBox()
	var d dialog.Dialog

	for _, a := range actions {
		action := a
		btn := widget.NewButton(action.Label, func() {
			d.Hide()
			if action.OnTapped != nil {
				action.OnTapped()
			}
		})
		btn.Importance = action.Importance
		box.Add(btn)
	}

	cancelBtn := widget.NewButton(loc.GetText(KeyCancel), func() { d.Hide() })
	cancelBtn.Importance = widget.LowImportance
	box.Add(widget.NewSeparator())
	box.Add(cancelBtn)

	d = dialog.NewCustomWithoutButtons(title, box, window)
	d.SetOnClosed(tabBar.Show)
	tabBar.Hide()
	d.Show()
	return d
}
