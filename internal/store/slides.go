package store

import "slides/internal/domain"

// SlidePatch holds the fields a slide update may change. Background
// variants are mutually exclusive: the patch carries a whole Background
// value and the last set wins.
type SlidePatch struct {
	Background *domain.Background `json:"background,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
	Transition *domain.Transition `json:"transition,omitempty"`
}

// AddSlide appends a blank slide to the current presentation and moves
// the cursor to it. No-op when no presentation is selected.
func (s *Store) AddSlide() (domain.Slide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return domain.Slide{}, false
	}
	slide := domain.NewSlide()
	p.Slides = append(p.Slides, slide)
	s.slideIndex = len(p.Slides) - 1
	s.selectedElementID = ""
	p.Touch()
	s.persist()
	return slide, true
}

// DeleteSlide removes a slide by id from the current presentation and
// re-clamps the slide cursor. Removing the last remaining slide is
// refused: a presentation must stay usable in the editor, and the
// invariant lives here rather than in a UI guard.
func (s *Store) DeleteSlide(slideID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	_, i := p.FindSlide(slideID)
	if i < 0 {
		return false
	}
	if len(p.Slides) == 1 {
		return false
	}
	p.Slides = append(p.Slides[:i], p.Slides[i+1:]...)
	s.clampSlideIndex()
	s.selectedElementID = ""
	p.Touch()
	s.persist()
	return true
}

// DuplicateSlide clones a slide (new slide id, new element ids) and
// inserts the clone immediately after its source, moving the cursor to it.
func (s *Store) DuplicateSlide(slideID string) (domain.Slide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return domain.Slide{}, false
	}
	src, i := p.FindSlide(slideID)
	if src == nil {
		return domain.Slide{}, false
	}
	clone := domain.CloneSlide(*src)
	p.Slides = append(p.Slides, domain.Slide{})
	copy(p.Slides[i+2:], p.Slides[i+1:])
	p.Slides[i+1] = clone
	s.slideIndex = i + 1
	s.selectedElementID = ""
	p.Touch()
	s.persist()
	return clone, true
}

// ReorderSlides moves the slide at from to position to, preserving the
// relative order of all other slides, and follows it with the cursor.
// Out-of-range indices are a no-op.
func (s *Store) ReorderSlides(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	n := len(p.Slides)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from != to {
		moved := p.Slides[from]
		p.Slides = append(p.Slides[:from], p.Slides[from+1:]...)
		p.Slides = append(p.Slides, domain.Slide{})
		copy(p.Slides[to+1:], p.Slides[to:])
		p.Slides[to] = moved
	}
	s.slideIndex = to
	p.Touch()
	s.persist()
	return true
}

// UpdateSlide merges patch into the slide with the given id.
func (s *Store) UpdateSlide(slideID string, patch SlidePatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	slide, _ := p.FindSlide(slideID)
	if slide == nil {
		return false
	}
	if patch.Background != nil {
		slide.Background = *patch.Background
	}
	if patch.Notes != nil {
		slide.Notes = *patch.Notes
	}
	if patch.Transition != nil {
		slide.Transition = *patch.Transition
	}
	p.Touch()
	s.persist()
	return true
}
