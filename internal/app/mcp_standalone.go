package app

import (
	"context"
	"log"
	"path/filepath"

	mcpserver "slides/internal/mcp"
	"slides/internal/service"
	"slides/internal/storage"
	"slides/internal/store"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with
// no GUI. It shares the GUI's database, so agents edit the same decks.
func ServeMCP() {
	dbPath := filepath.Join(dataDir(), "slides.db")
	db, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	snapshots := storage.NewSnapshotStore(db)
	st := store.New(snapshots)
	presentations, err := snapshots.LoadPresentations()
	if err != nil {
		log.Printf("Failed to load presentations: %v", err)
	}
	st.Load(presentations)

	emitter := noopEmitter{}
	decks := service.NewDeckService(st, emitter)
	playback := service.NewPlaybackService(decks, emitter)
	defer playback.EndShow()

	mcpSrv := mcpserver.New(mcpserver.Deps{
		Decks:    decks,
		Playback: playback,
	})

	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
