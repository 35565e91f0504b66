package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showToast shows a short message near the bottom of the window and hides it
// after ToastAutoHide.
func showToast(window fyne.Window, message string) {
	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	popup := widget.NewPopUp(container.NewPadded(label), window.Canvas())

	canvasSize := window.Canvas().Size()
	size := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(size)
	popup.Move(fyne.NewPos((canvasSize.Width-size.Width)/2, canvasSize.Height-size.Height-ToastMargin))
	popup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(popup.Hide)
	})
}

// showError reports err under a localized heading
func showError(window fyne.Window, heading string, err error) {
	dialog.ShowInformation(heading, err.Error(), window)
}

// confirm asks message and runs onYes when accepted
func confirm(window fyne.Window, loc *Localization, message string, onYes func()) {
	dialog.ShowConfirm(loc.GetText(KeyConfirmTitle), message, func(ok bool) {
		if ok {
			onYes()
		}
	}, window)
}
