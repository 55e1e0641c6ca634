package app

import (
	"context"
	"encoding/base64"
	"log"
	"os"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"slides/internal/service"
	"slides/internal/storage"
	"slides/internal/store"
	"slides/internal/terminal"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	db        *storage.DB
	snapshots *storage.SnapshotStore
	store     *store.Store

	decks       *service.DeckService
	playback    *service.PlaybackService
	maintenance *service.MaintenanceService
	datasources *service.DataSourceService
	codeLinks   *service.CodeLinkService
	window      *service.WindowSettingsService
	term        *terminal.Manager

	// Track which element's linked file is open in the terminal
	editingElementID string
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by delegating to the Wails runtime.
func (a *App) Emit(ctx context.Context, event string, data any) {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(a.ctx, event, data)
}

// dataDir is where the app keeps its database and exports.
func dataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "slides")
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	dbPath := filepath.Join(dataDir(), "slides.db")
	db, err := storage.New(dbPath)
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db
	a.snapshots = storage.NewSnapshotStore(db)

	// Memory is the source of truth; the snapshot only seeds it.
	a.store = store.New(a.snapshots)
	presentations, err := a.snapshots.LoadPresentations()
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to load presentations: %v", err)
	}
	a.store.Load(presentations)

	a.decks = service.NewDeckService(a.store, a)
	a.playback = service.NewPlaybackService(a.decks, a)
	a.datasources = service.NewDataSourceService(storage.NewDataSourceStore(db), a.decks, a)
	a.window = service.NewWindowSettingsService(db)

	a.maintenance = service.NewMaintenanceService(a.decks, a)
	a.maintenance.Start(ctx)

	codeLinks, err := service.NewCodeLinkService(a.decks, a)
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to create file watcher: %v", err)
	}
	a.codeLinks = codeLinks

	// Embedded terminal: PTY output → base64 → frontend event
	a.term = terminal.New(
		func(data []byte) {
			encoded := base64.StdEncoding.EncodeToString(data)
			wailsRuntime.EventsEmit(ctx, "terminal:data", encoded)
		},
		func() {
			a.editingElementID = ""
			wailsRuntime.EventsEmit(ctx, "terminal:exit", nil)
		},
	)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.term != nil {
		a.term.Close()
	}
	if a.codeLinks != nil {
		a.codeLinks.Close()
	}
	if a.maintenance != nil {
		a.maintenance.Stop()
	}
	if a.playback != nil {
		a.playback.EndShow()
	}
	if a.datasources != nil {
		a.datasources.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("app: close database: %v", err)
		}
	}
}

// LoadWindowSize returns the persisted main window dimensions.
func (a *App) LoadWindowSize() service.WindowSize {
	return a.window.LoadWindowSize()
}

// SaveWindowSize persists the main window dimensions.
func (a *App) SaveWindowSize(width, height int) error {
	return a.window.SaveWindowSize(width, height)
}
