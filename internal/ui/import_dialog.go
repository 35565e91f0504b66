package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/importer"
)

// ImportDialog asks for a playlist URL and a key and imports the playlist
// in the background.
type ImportDialog struct {
	window   fyne.Window
	loc      *Localization
	importer *importer.Importer
	logger   *zap.Logger
	onDone   func(importer.Result)

	urlEntry  *widget.Entry
	keySelect *widget.Select
	dialog    *dialog.ConfirmDialog
}

// NewImportDialog creates the dialog with defaultKey preselected
func NewImportDialog(window fyne.Window, loc *Localization, imp *importer.Importer, defaultKey string, keys []string, logger *zap.Logger, onDone func(importer.Result)) *ImportDialog {
	d := &ImportDialog{
		window:   window,
		loc:      loc,
		importer: imp,
		logger:   logger,
		onDone:   onDone,
	}

	d.urlEntry = widget.NewEntry()
	d.urlEntry.SetPlaceHolder(loc.GetText(KeyPlaylistURL))
	d.urlEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := importer.ExtractPlaylistID(s)
		return err
	}

	d.keySelect = widget.NewSelect(keys, nil)
	d.keySelect.SetSelected(defaultKey)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyPlaylistURL)),
		d.urlEntry,
		widget.NewLabel(loc.GetText(KeyKey)),
		d.keySelect,
	)

	d.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeyImportPlaylist),
		loc.GetText(KeyImport),
		loc.GetText(KeyCancel),
		form,
		d.onConfirm,
		window,
	)
	d.dialog.Resize(fyne.NewSize(DialogWidth, 0))
	return d
}

// Show displays the dialog
func (d *ImportDialog) Show() {
	d.dialog.Show()
}

func (d *ImportDialog) onConfirm(ok bool) {
	if !ok {
		return
	}
	url := strings.TrimSpace(d.urlEntry.Text)
	key := d.keySelect.Selected

	progress := dialog.NewCustomWithoutButtons(d.loc.GetText(KeyImportStarted), widget.NewProgressBarInfinite(), d.window)
	progress.Show()

	go func() {
		res, err := d.importer.Import(context.Background(), url, key)

		fyne.Do(func() {
			progress.Hide()
			if err != nil {
				d.logger.Error("Import failed", zap.String("url", url), zap.Error(err))
				showError(d.window, d.loc.GetText(KeyImportFailed), err)
				return
			}
			dialog.ShowInformation(d.loc.GetText(KeyImportPlaylist),
				fmt.Sprintf(d.loc.GetText(KeyImportFinished), len(res.Added), res.Skipped), d.window)
			if d.onDone != nil {
				d.onDone(res)
			}
		})
	}()
}
