package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"slides/internal/domain"
)

// deckFile is the on-disk export format. The version field lets a future
// importer reject files it cannot read.
type deckFile struct {
	Version      int                 `json:"version"`
	Presentation domain.Presentation `json:"presentation"`
}

const deckFileVersion = 1

// WriteDeck exports a presentation as indented JSON. The write goes to a
// temp file in the target directory first and is renamed into place, so
// a crash mid-write never leaves a truncated export.
func WriteDeck(p domain.Presentation, path string) error {
	data, err := json.MarshalIndent(deckFile{Version: deckFileVersion, Presentation: p}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal deck: %w", err)
	}

	tempPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// ReadDeck loads a previously exported presentation.
func ReadDeck(path string) (domain.Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Presentation{}, fmt.Errorf("read deck file: %w", err)
	}
	var f deckFile
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Presentation{}, fmt.Errorf("parse deck file: %w", err)
	}
	if f.Version != deckFileVersion {
		return domain.Presentation{}, fmt.Errorf("unsupported deck file version %d", f.Version)
	}
	return f.Presentation, nil
}
