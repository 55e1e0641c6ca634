package app

import (
	"fmt"
	"os"
	"path/filepath"

	"slides/internal/export"
	"slides/internal/service"
)

// ============================================================
// Export
// ============================================================

// ExportDeck writes a presentation to a JSON file. An empty path exports
// into the app's data directory.
func (a *App) ExportDeck(presentationID, path string) (string, error) {
	p, ok := a.decks.GetPresentation(presentationID)
	if !ok {
		return "", fmt.Errorf("presentation not found: %s", presentationID)
	}
	if path == "" {
		dir := filepath.Join(dataDir(), "exports")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
		path = filepath.Join(dir, p.ID+".deck.json")
	}
	if err := export.WriteDeck(p, path); err != nil {
		return "", err
	}
	return path, nil
}

// ImportDeck loads a previously exported deck as a new presentation in
// the collection.
func (a *App) ImportDeck(path string) (string, error) {
	p, err := export.ReadDeck(path)
	if err != nil {
		return "", err
	}
	created := a.decks.Store().CreatePresentation(p.Title, p.Description, p.Slides)
	a.Emit(a.ctx, service.EventDeckListChanged, nil)
	return created.ID, nil
}

// RenderSlideThumbnail rasterizes one slide of the open deck to a PNG
// and returns the file path.
func (a *App) RenderSlideThumbnail(slideID string) (string, error) {
	ds, ok := a.decks.DeckState()
	if !ok {
		return "", fmt.Errorf("no presentation open")
	}
	slide, _ := ds.Presentation.FindSlide(slideID)
	if slide == nil {
		return "", fmt.Errorf("slide not found: %s", slideID)
	}

	dir := filepath.Join(dataDir(), "thumbnails")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create thumbnail dir: %w", err)
	}
	path := filepath.Join(dir, slide.ID+".png")
	if err := export.RenderThumbnail(*slide, path); err != nil {
		return "", err
	}
	return path, nil
}
