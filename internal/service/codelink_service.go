package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"slides/internal/domain"
	"slides/internal/store"
	"slides/internal/watch"
)

// ─────────────────────────────────────────────────────────────
// Code Link Service — code elements backed by files on disk
// ─────────────────────────────────────────────────────────────

// languageByExt maps common file extensions to highlighter languages.
var languageByExt = map[string]string{
	".go":   "go",
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".rs":   "rust",
	".sql":  "sql",
	".sh":   "bash",
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
}

// CodeLinkService links code elements to source files on disk. When an
// external editor saves a linked file, the element's code payload is
// refreshed and the frontend is notified.
type CodeLinkService struct {
	decks   *DeckService
	emitter EventEmitter
	watcher *watch.Watcher
}

// NewCodeLinkService creates the service and its file watcher.
func NewCodeLinkService(decks *DeckService, emitter EventEmitter) (*CodeLinkService, error) {
	s := &CodeLinkService{decks: decks, emitter: emitter}
	w, err := watch.New(func(elementID, content string) {
		s.refresh(context.Background(), elementID, content)
	})
	if err != nil {
		return nil, err
	}
	s.watcher = w
	return s, nil
}

// LinkElement attaches a code element to a file. The element's payload
// is filled from the file immediately, then kept in sync on saves.
func (s *CodeLinkService) LinkElement(ctx context.Context, elementID, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read linked file: %w", err)
	}

	lang := languageByExt[strings.ToLower(filepath.Ext(filePath))]
	ok := s.decks.UpdateElement(ctx, elementID, store.ElementPatch{
		Code: &domain.CodePayload{
			Language: lang,
			Code:     strings.TrimSpace(string(content)),
			FilePath: filePath,
		},
	})
	if !ok {
		return fmt.Errorf("element not found: %s", elementID)
	}
	return s.watcher.LinkFile(elementID, filePath)
}

// UnlinkElement detaches the element from its file. The payload keeps
// its last content but stops following the file.
func (s *CodeLinkService) UnlinkElement(ctx context.Context, elementID string) {
	s.watcher.UnlinkElement(elementID)

	ds, ok := s.decks.DeckState()
	if !ok {
		return
	}
	el, _ := ds.Presentation.FindElement(elementID)
	if el == nil || el.Code == nil {
		return
	}
	s.decks.UpdateElement(ctx, elementID, store.ElementPatch{
		Code: &domain.CodePayload{Language: el.Code.Language, Code: el.Code.Code},
	})
}

// Close stops the underlying watcher.
func (s *CodeLinkService) Close() error {
	return s.watcher.Close()
}

func (s *CodeLinkService) refresh(ctx context.Context, elementID, content string) {
	ds, ok := s.decks.DeckState()
	if !ok {
		return
	}
	el, _ := ds.Presentation.FindElement(elementID)
	if el == nil || el.Code == nil {
		s.watcher.UnlinkElement(elementID)
		return
	}
	updated := *el.Code
	updated.Code = content
	if s.decks.UpdateElement(ctx, elementID, store.ElementPatch{Code: &updated}) {
		s.emitter.Emit(ctx, EventElementLinkedSrc, elementID)
	}
}
