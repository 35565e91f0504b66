package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/setlist/internal/catalog"
	"github.com/ytget/setlist/internal/config"
	"github.com/ytget/setlist/internal/importer"
	"github.com/ytget/setlist/internal/logging"
	"github.com/ytget/setlist/internal/store"
	"github.com/ytget/setlist/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.setlist"
	AppName = "Setlist"

	WindowWidth  = 420
	WindowHeight = 720

	SQLiteFileName = "setlist.db"
)

func main() {
	logger, err := logging.New(os.Getenv("SETLIST_LOG_LEVEL"), version == "dev")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting", zap.String("app", AppName), zap.String("version", version))

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	backend, closer, err := openBackend(myApp, settings)
	if err != nil {
		logger.Error("Failed to open storage, falling back to preferences", zap.Error(err))
		backend, closer, err = store.Open(context.Background(), store.Options{
			Kind:        store.KindPreferences,
			Preferences: myApp.Preferences(),
		})
		if err != nil {
			logger.Fatal("Failed to open preferences storage", zap.Error(err))
		}
	}
	defer closer.Close()

	c := catalog.New(backend, logger)
	imp := importer.New(nil, c.Songs, logger)

	ui.NewRootUI(myWindow, myApp, ui.Deps{
		Catalog:  c,
		Importer: imp,
		Settings: settings,
		Logger:   logger,
	})

	myWindow.ShowAndRun()
}

// openBackend opens the storage selected in settings. SQLite lives in the
// app's private storage directory.
func openBackend(a fyne.App, settings *config.Settings) (store.Backend, io.Closer, error) {
	opts := store.Options{
		Kind:        settings.GetStorageBackend(),
		Preferences: a.Preferences(),
	}
	if opts.Kind == store.KindSQLite {
		opts.SQLitePath = filepath.Join(a.Storage().RootURI().Path(), SQLiteFileName)
	}
	return store.Open(context.Background(), opts)
}
