package store

import (
	"log"
	"sync"

	"slides/internal/domain"
)

// Persister receives the full collection after every successful mutation.
// Implementations are best-effort: the in-memory state is the source of
// truth and persistence failures are logged, never surfaced.
type Persister interface {
	SavePresentations(presentations []domain.Presentation) error
}

// Store is the authoritative in-memory container for all presentations
// plus the editing cursor state: the selected presentation, the 0-based
// slide index into it, and the selected element (if any).
//
// All mutation methods are atomic single state transitions. A mutation
// referencing an unknown id is a no-op and reports false; it never errors.
// The store is safe for use from the UI bindings, the MCP server, and
// background jobs concurrently.
type Store struct {
	mu            sync.Mutex
	presentations []domain.Presentation
	persister     Persister

	currentID         string
	slideIndex        int
	selectedElementID string
}

// New creates an empty store. persister may be nil (tests).
func New(persister Persister) *Store {
	return &Store{persister: persister}
}

// Load replaces the whole collection. Called once at startup with the
// persisted snapshot; cursors reset to "no presentation selected".
func (s *Store) Load(presentations []domain.Presentation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentations = presentations
	s.currentID = ""
	s.slideIndex = 0
	s.selectedElementID = ""
}

// persist pushes the collection to the persister. Must be called with the
// lock held, after a successful mutation. Failures are logged only.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	snapshot := make([]domain.Presentation, len(s.presentations))
	copy(snapshot, s.presentations)
	if err := s.persister.SavePresentations(snapshot); err != nil {
		log.Printf("store: persist failed (keeping in-memory state): %v", err)
	}
}

// find returns a pointer into the collection, or nil.
// Must be called with the lock held.
func (s *Store) find(id string) *domain.Presentation {
	for i := range s.presentations {
		if s.presentations[i].ID == id {
			return &s.presentations[i]
		}
	}
	return nil
}

// current returns the selected presentation, or nil.
// Must be called with the lock held.
func (s *Store) current() *domain.Presentation {
	if s.currentID == "" {
		return nil
	}
	return s.find(s.currentID)
}

// clampSlideIndex keeps the slide cursor valid after the slide list
// shrinks. Must be called with the lock held.
func (s *Store) clampSlideIndex() {
	p := s.current()
	if p == nil || len(p.Slides) == 0 {
		s.slideIndex = 0
		return
	}
	if s.slideIndex > len(p.Slides)-1 {
		s.slideIndex = len(p.Slides) - 1
	}
	if s.slideIndex < 0 {
		s.slideIndex = 0
	}
}

// ── Read accessors ─────────────────────────────────────────

// Presentations returns all presentations, trashed included.
func (s *Store) Presentations() []domain.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Presentation, len(s.presentations))
	copy(out, s.presentations)
	return out
}

// ListActive returns presentations not in the trash.
func (s *Store) ListActive() []domain.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Presentation
	for _, p := range s.presentations {
		if !p.Trashed() {
			out = append(out, p)
		}
	}
	return out
}

// ListTrashed returns soft-deleted presentations.
func (s *Store) ListTrashed() []domain.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Presentation
	for _, p := range s.presentations {
		if p.Trashed() {
			out = append(out, p)
		}
	}
	return out
}

// Presentation returns one presentation by id.
func (s *Store) Presentation(id string) (domain.Presentation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p := s.find(id); p != nil {
		return *p, true
	}
	return domain.Presentation{}, false
}

// CurrentPresentationID returns the selected presentation id, or "".
func (s *Store) CurrentPresentationID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID
}

// CurrentSlideIndex returns the slide cursor.
func (s *Store) CurrentSlideIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slideIndex
}

// SelectedElementID returns the selected element id, or "".
func (s *Store) SelectedElementID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedElementID
}

// DeckState returns the full editing state for the selected presentation.
func (s *Store) DeckState() (*domain.DeckState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.current()
	if p == nil {
		return nil, false
	}
	return &domain.DeckState{
		Presentation:      *p,
		SlideIndex:        s.slideIndex,
		SelectedElementID: s.selectedElementID,
	}, true
}

// ── Cursor transitions ─────────────────────────────────────

// SelectPresentation makes id the current presentation, resetting the
// slide cursor to 0 and clearing the element selection. Unknown ids
// leave the cursor untouched.
func (s *Store) SelectPresentation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.find(id) == nil {
		return false
	}
	s.currentID = id
	s.slideIndex = 0
	s.selectedElementID = ""
	return true
}

// SelectSlide moves the slide cursor, clamped to [0, len-1], and clears
// the element selection.
func (s *Store) SelectSlide(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current() == nil {
		return
	}
	s.slideIndex = index
	s.clampSlideIndex()
	s.selectedElementID = ""
}

// SelectElement marks an element as selected. The id is not validated;
// selection of a vanished element is cleared by the mutation that
// removed it.
func (s *Store) SelectElement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedElementID = id
}

// ClearSelection drops the element selection.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedElementID = ""
}
