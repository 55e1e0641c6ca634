package service

import (
	"context"
	"fmt"
	"time"

	"slides/internal/domain"
	"slides/internal/geometry"
	"slides/internal/store"
	"slides/internal/template"
)

// ─────────────────────────────────────────────────────────────
// Deck Service — business logic for presentations
// ─────────────────────────────────────────────────────────────

// Events emitted toward the frontend.
const (
	EventDeckChanged      = "deck:changed"      // any mutation of the open deck
	EventDeckListChanged  = "deck:list-changed" // create/trash/restore/purge
	EventDeckSelection    = "deck:selection"    // cursor or element selection moved
	EventDeckTrashPurged  = "deck:trash-purged"
	EventElementLinkedSrc = "element:source-updated" // file-linked code element refreshed
)

// DeckService owns every mutation of the presentation collection. It is
// decoupled from the Wails App struct via the EventEmitter interface.
type DeckService struct {
	store   *store.Store
	emitter EventEmitter
}

// NewDeckService creates a DeckService.
func NewDeckService(st *store.Store, emitter EventEmitter) *DeckService {
	return &DeckService{store: st, emitter: emitter}
}

// Store exposes the underlying document store for read-only collaborators
// (playback, export, MCP tools).
func (s *DeckService) Store() *store.Store {
	return s.store
}

// ── Presentations ──────────────────────────────────────────

func (s *DeckService) ListPresentations() []domain.Presentation {
	return s.store.ListActive()
}

func (s *DeckService) ListTrash() []domain.Presentation {
	return s.store.ListTrashed()
}

func (s *DeckService) GetPresentation(id string) (domain.Presentation, bool) {
	return s.store.Presentation(id)
}

// CreatePresentation creates a deck, optionally seeded from a template.
// An empty templateID yields a single blank slide.
func (s *DeckService) CreatePresentation(ctx context.Context, title, description, templateID string) (domain.Presentation, error) {
	var seed []domain.Slide
	if templateID != "" {
		tpl, ok := template.Lookup(templateID)
		if !ok {
			return domain.Presentation{}, fmt.Errorf("unknown template: %s", templateID)
		}
		seed = template.Instantiate(tpl)
	}
	p := s.store.CreatePresentation(title, description, seed)
	s.emitter.Emit(ctx, EventDeckListChanged, nil)
	s.emitChanged(ctx)
	return p, nil
}

func (s *DeckService) UpdatePresentation(ctx context.Context, id string, patch store.PresentationPatch) bool {
	ok := s.store.UpdatePresentation(id, patch)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

// MoveToTrash soft-deletes a presentation. It stays recoverable until the
// trash is purged or it is deleted permanently.
func (s *DeckService) MoveToTrash(ctx context.Context, id string) bool {
	now := time.Now()
	ok := s.store.UpdatePresentation(id, store.PresentationPatch{DeletedAt: &now})
	if ok {
		s.emitter.Emit(ctx, EventDeckListChanged, nil)
	}
	return ok
}

func (s *DeckService) RestoreFromTrash(ctx context.Context, id string) bool {
	ok := s.store.RestorePresentation(id)
	if ok {
		s.emitter.Emit(ctx, EventDeckListChanged, nil)
	}
	return ok
}

func (s *DeckService) DeleteForever(ctx context.Context, id string) bool {
	ok := s.store.PermanentlyDeletePresentation(id)
	if ok {
		s.emitter.Emit(ctx, EventDeckListChanged, nil)
	}
	return ok
}

// SharePresentation grants role to email. Grants are additive; revoking
// is not supported.
func (s *DeckService) SharePresentation(ctx context.Context, id, email string, role domain.Role) bool {
	ok := s.store.AddPermission(id, email, role)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

// ── Selection ──────────────────────────────────────────────

func (s *DeckService) OpenPresentation(ctx context.Context, id string) bool {
	ok := s.store.SelectPresentation(id)
	if ok {
		s.emitter.Emit(ctx, EventDeckSelection, s.deckState())
	}
	return ok
}

func (s *DeckService) SelectSlide(ctx context.Context, index int) {
	s.store.SelectSlide(index)
	s.emitter.Emit(ctx, EventDeckSelection, s.deckState())
}

func (s *DeckService) SelectElement(ctx context.Context, id string) {
	s.store.SelectElement(id)
	s.emitter.Emit(ctx, EventDeckSelection, s.deckState())
}

func (s *DeckService) ClearSelection(ctx context.Context) {
	s.store.ClearSelection()
	s.emitter.Emit(ctx, EventDeckSelection, s.deckState())
}

func (s *DeckService) DeckState() (*domain.DeckState, bool) {
	return s.store.DeckState()
}

// ── Slides ─────────────────────────────────────────────────

func (s *DeckService) AddSlide(ctx context.Context) (domain.Slide, bool) {
	slide, ok := s.store.AddSlide()
	if ok {
		s.emitChanged(ctx)
	}
	return slide, ok
}

func (s *DeckService) DeleteSlide(ctx context.Context, slideID string) bool {
	ok := s.store.DeleteSlide(slideID)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

func (s *DeckService) DuplicateSlide(ctx context.Context, slideID string) (domain.Slide, bool) {
	slide, ok := s.store.DuplicateSlide(slideID)
	if ok {
		s.emitChanged(ctx)
	}
	return slide, ok
}

func (s *DeckService) ReorderSlides(ctx context.Context, from, to int) bool {
	ok := s.store.ReorderSlides(from, to)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

func (s *DeckService) UpdateSlide(ctx context.Context, slideID string, patch store.SlidePatch) bool {
	ok := s.store.UpdateSlide(slideID, patch)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

// ── Elements ───────────────────────────────────────────────

func (s *DeckService) AddElement(ctx context.Context, el domain.Element) (domain.Element, bool) {
	created, ok := s.store.AddElement(el)
	if ok {
		s.emitChanged(ctx)
	}
	return created, ok
}

func (s *DeckService) UpdateElement(ctx context.Context, elementID string, patch store.ElementPatch) bool {
	ok := s.store.UpdateElement(elementID, patch)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

func (s *DeckService) DeleteElement(ctx context.Context, elementID string) bool {
	ok := s.store.DeleteElement(elementID)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

func (s *DeckService) MoveElementLayer(ctx context.Context, elementID string, target store.LayerTarget) bool {
	ok := s.store.MoveElementLayer(elementID, target)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

func (s *DeckService) AlignElement(ctx context.Context, elementID string, align store.Alignment) bool {
	ok := s.store.AlignElement(elementID, align)
	if ok {
		s.emitChanged(ctx)
	}
	return ok
}

// DragElement translates a pixel drag on the rendered surface into logical
// canvas units and moves the element, clamping it to the canvas.
func (s *DeckService) DragElement(ctx context.Context, elementID string, pixelDX, pixelDY, surfaceWidth, surfaceHeight, zoom float64) bool {
	p, ok := s.store.DeckState()
	if !ok {
		return false
	}
	el, _ := p.Presentation.FindElement(elementID)
	if el == nil {
		return false
	}
	delta := geometry.DragDeltaToLogical(pixelDX, pixelDY, surfaceWidth, surfaceHeight, zoom)
	pos := geometry.ClampPosition(geometry.Point{X: el.Position.X + delta.X, Y: el.Position.Y + delta.Y}, el.Size)
	return s.UpdateElement(ctx, elementID, store.ElementPatch{Position: &pos})
}

// ── Templates ──────────────────────────────────────────────

func (s *DeckService) ListTemplates() []template.Template {
	return template.List()
}

func (s *DeckService) deckState() any {
	ds, ok := s.store.DeckState()
	if !ok {
		return nil
	}
	return ds
}

func (s *DeckService) emitChanged(ctx context.Context) {
	s.emitter.Emit(ctx, EventDeckChanged, s.deckState())
}
