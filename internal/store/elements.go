package store

import (
	"slides/internal/domain"
	"slides/internal/geometry"
)

// ElementPatch holds the fields an element update may change. Style is
// shallow-merged onto the existing bag; payload pointers replace the
// element's content wholesale.
type ElementPatch struct {
	Position  *geometry.Point   `json:"position,omitempty"`
	Size      *geometry.Size    `json:"size,omitempty"`
	Rotation  *float64          `json:"rotation,omitempty"`
	Style     domain.Style      `json:"style,omitempty"`
	Animation *domain.Animation `json:"animation,omitempty"`

	Text  *domain.TextPayload  `json:"text,omitempty"`
	Image *domain.ImagePayload `json:"image,omitempty"`
	Shape *domain.ShapePayload `json:"shape,omitempty"`
	Video *domain.VideoPayload `json:"video,omitempty"`
	Chart *domain.ChartPayload `json:"chart,omitempty"`
	Table *domain.TablePayload `json:"table,omitempty"`
	Icon  *domain.IconPayload  `json:"icon,omitempty"`
	Code  *domain.CodePayload  `json:"code,omitempty"`
}

// LayerTarget is where MoveElementLayer sends an element.
type LayerTarget string

const (
	LayerFront LayerTarget = "front"
	LayerBack  LayerTarget = "back"
)

// Alignment is a horizontal canvas alignment for AlignElement.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// AddElement assigns a fresh id to el, appends it to the current slide's
// element list (top of the z-order), and selects it. No-op when no slide
// is active.
func (s *Store) AddElement(el domain.Element) (domain.Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil || len(p.Slides) == 0 {
		return domain.Element{}, false
	}
	slide := &p.Slides[s.slideIndex]
	created := domain.NewElement(el)
	slide.Elements = append(slide.Elements, created)
	s.selectedElementID = created.ID
	p.Touch()
	s.persist()
	return created, true
}

// UpdateElement merges patch into the element with the given id. The
// element is searched across every slide of the current presentation,
// not just the active one.
func (s *Store) UpdateElement(elementID string, patch ElementPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	el, _ := p.FindElement(elementID)
	if el == nil {
		return false
	}
	if patch.Position != nil {
		el.Position = *patch.Position
	}
	if patch.Size != nil {
		el.Size = *patch.Size
	}
	if patch.Rotation != nil {
		el.Rotation = *patch.Rotation
	}
	if patch.Style != nil {
		el.Style = el.Style.Merge(patch.Style)
	}
	if patch.Animation != nil {
		el.Animation = patch.Animation
	}
	if patch.Text != nil {
		el.Text = patch.Text
	}
	if patch.Image != nil {
		el.Image = patch.Image
	}
	if patch.Shape != nil {
		el.Shape = patch.Shape
	}
	if patch.Video != nil {
		el.Video = patch.Video
	}
	if patch.Chart != nil {
		el.Chart = patch.Chart
	}
	if patch.Table != nil {
		el.Table = patch.Table
	}
	if patch.Icon != nil {
		el.Icon = patch.Icon
	}
	if patch.Code != nil {
		el.Code = patch.Code
	}
	p.Touch()
	s.persist()
	return true
}

// DeleteElement removes an element from whichever slide contains it and
// clears the selection if it was selected.
func (s *Store) DeleteElement(elementID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	for i := range p.Slides {
		slide := &p.Slides[i]
		for j := range slide.Elements {
			if slide.Elements[j].ID != elementID {
				continue
			}
			slide.Elements = append(slide.Elements[:j], slide.Elements[j+1:]...)
			if s.selectedElementID == elementID {
				s.selectedElementID = ""
			}
			p.Touch()
			s.persist()
			return true
		}
	}
	return false
}

// MoveElementLayer reinserts an element at the end (front) or start
// (back) of its owning slide's element list, changing paint order while
// preserving the relative order of everything else.
func (s *Store) MoveElementLayer(elementID string, target LayerTarget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	for i := range p.Slides {
		slide := &p.Slides[i]
		for j := range slide.Elements {
			if slide.Elements[j].ID != elementID {
				continue
			}
			el := slide.Elements[j]
			rest := append(slide.Elements[:j], slide.Elements[j+1:]...)
			switch target {
			case LayerBack:
				slide.Elements = append([]domain.Element{el}, rest...)
			default:
				slide.Elements = append(rest, el)
			}
			p.Touch()
			s.persist()
			return true
		}
	}
	return false
}

// AlignElement recomputes position.x so the element aligns to the canvas
// edge or center. Alignment is canvas-relative, not content-relative.
func (s *Store) AlignElement(elementID string, align Alignment) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.current()
	if p == nil {
		return false
	}
	el, _ := p.FindElement(elementID)
	if el == nil {
		return false
	}
	switch align {
	case AlignLeft:
		el.Position.X = 0
	case AlignCenter:
		el.Position.X = (geometry.CanvasWidth - el.Size.Width) / 2
	case AlignRight:
		el.Position.X = geometry.CanvasWidth - el.Size.Width
	default:
		return false
	}
	p.Touch()
	s.persist()
	return true
}
