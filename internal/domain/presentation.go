package domain

import (
	"time"

	"github.com/google/uuid"
)

// Visibility controls who can open a presentation by link.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Role is the access level granted to a collaborator.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleEditor Role = "editor"
)

// Permission grants a role to one email address. The list is additive:
// entries are appended and never revoked.
type Permission struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Presentation is the top-level document: a named, ordered deck of slides.
// Slice order is deck order; there is no separate rank field.
type Presentation struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Slides      []Slide      `json:"slides"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	DeletedAt   *time.Time   `json:"deletedAt,omitempty"`
	Visibility  Visibility   `json:"visibility"`
	PublicRole  Role         `json:"publicRole"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// NewPresentation creates a presentation with a fresh id and timestamps.
// When seedSlides is empty a single blank slide is created, so a new deck
// is always usable in the editor.
func NewPresentation(title, description string, seedSlides []Slide) *Presentation {
	if len(seedSlides) == 0 {
		seedSlides = []Slide{NewSlide()}
	}
	now := time.Now()
	return &Presentation{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Slides:      seedSlides,
		CreatedAt:   now,
		UpdatedAt:   now,
		Visibility:  VisibilityPrivate,
		PublicRole:  RoleViewer,
	}
}

// Trashed reports whether the presentation is soft-deleted.
func (p *Presentation) Trashed() bool {
	return p.DeletedAt != nil
}

// Touch refreshes the modification timestamp. Every mutation to the
// presentation or anything inside it goes through here.
func (p *Presentation) Touch() {
	p.UpdatedAt = time.Now()
}

// FindSlide returns the slide with the given id and its index, or nil and -1.
func (p *Presentation) FindSlide(slideID string) (*Slide, int) {
	for i := range p.Slides {
		if p.Slides[i].ID == slideID {
			return &p.Slides[i], i
		}
	}
	return nil, -1
}

// FindElement searches every slide for an element id. Elements are
// addressed by id across the whole presentation, not by (slide, id) pairs.
func (p *Presentation) FindElement(elementID string) (*Element, *Slide) {
	for i := range p.Slides {
		s := &p.Slides[i]
		for j := range s.Elements {
			if s.Elements[j].ID == elementID {
				return &s.Elements[j], s
			}
		}
	}
	return nil, nil
}
