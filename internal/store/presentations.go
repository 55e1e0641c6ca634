package store

import (
	"time"

	"slides/internal/domain"
)

// PresentationPatch holds the fields a presentation update may change.
// Nil fields are left untouched. Setting DeletedAt moves the presentation
// to the trash without removing it from storage.
type PresentationPatch struct {
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Visibility  *domain.Visibility `json:"visibility,omitempty"`
	PublicRole  *domain.Role       `json:"publicRole,omitempty"`
	DeletedAt   *time.Time         `json:"deletedAt,omitempty"`
}

// CreatePresentation appends a new presentation built from the given seed
// slides (one blank slide when empty) and makes it current.
func (s *Store) CreatePresentation(title, description string, seedSlides []domain.Slide) domain.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.NewPresentation(title, description, seedSlides)
	s.presentations = append(s.presentations, *p)
	s.currentID = p.ID
	s.slideIndex = 0
	s.selectedElementID = ""
	s.persist()
	return *p
}

// UpdatePresentation merges patch into the presentation with the given id
// and refreshes its updatedAt. Unknown id is a no-op.
func (s *Store) UpdatePresentation(id string, patch PresentationPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return false
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Visibility != nil {
		p.Visibility = *patch.Visibility
	}
	if patch.PublicRole != nil {
		p.PublicRole = *patch.PublicRole
	}
	if patch.DeletedAt != nil {
		t := *patch.DeletedAt
		p.DeletedAt = &t
	}
	p.Touch()
	s.persist()
	return true
}

// DeletePresentation hard-removes a presentation. This is distinct from
// the trash flow, which sets deletedAt via UpdatePresentation. If the
// current presentation is removed the cursor becomes "none selected".
func (s *Store) DeletePresentation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removePresentation(id)
}

// PermanentlyDeletePresentation hard-removes an already-trashed
// presentation. It behaves identically to DeletePresentation; the name
// marks the trash flow.
func (s *Store) PermanentlyDeletePresentation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removePresentation(id)
}

// removePresentation must be called with the lock held.
func (s *Store) removePresentation(id string) bool {
	for i := range s.presentations {
		if s.presentations[i].ID != id {
			continue
		}
		s.presentations = append(s.presentations[:i], s.presentations[i+1:]...)
		if s.currentID == id {
			s.currentID = ""
			s.slideIndex = 0
			s.selectedElementID = ""
		}
		s.persist()
		return true
	}
	return false
}

// RestorePresentation clears deletedAt, bringing a trashed presentation
// back into the active listings.
func (s *Store) RestorePresentation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return false
	}
	p.DeletedAt = nil
	p.Touch()
	s.persist()
	return true
}

// AddPermission appends an {email, role} grant. The permission list is
// additive only; there is no revoke operation.
func (s *Store) AddPermission(id, email string, role domain.Role) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(id)
	if p == nil {
		return false
	}
	p.Permissions = append(p.Permissions, domain.Permission{Email: email, Role: role})
	p.Touch()
	s.persist()
	return true
}
