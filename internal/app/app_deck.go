package app

import (
	"slides/internal/domain"
	"slides/internal/store"
	"slides/internal/template"
)

// ============================================================
// Presentations
// ============================================================

func (a *App) ListPresentations() []domain.Presentation {
	return a.decks.ListPresentations()
}

func (a *App) ListTrash() []domain.Presentation {
	return a.decks.ListTrash()
}

func (a *App) ListTemplates() []template.Template {
	return a.decks.ListTemplates()
}

func (a *App) CreatePresentation(title, description, templateID string) (domain.Presentation, error) {
	return a.decks.CreatePresentation(a.ctx, title, description, templateID)
}

func (a *App) UpdatePresentation(id string, patch store.PresentationPatch) bool {
	return a.decks.UpdatePresentation(a.ctx, id, patch)
}

func (a *App) MoveToTrash(id string) bool {
	return a.decks.MoveToTrash(a.ctx, id)
}

func (a *App) RestoreFromTrash(id string) bool {
	return a.decks.RestoreFromTrash(a.ctx, id)
}

func (a *App) DeleteForever(id string) bool {
	return a.decks.DeleteForever(a.ctx, id)
}

func (a *App) SharePresentation(id, email string, role string) bool {
	return a.decks.SharePresentation(a.ctx, id, email, domain.Role(role))
}

// ============================================================
// Selection
// ============================================================

func (a *App) OpenPresentation(id string) bool {
	return a.decks.OpenPresentation(a.ctx, id)
}

func (a *App) SelectSlide(index int) {
	a.decks.SelectSlide(a.ctx, index)
}

func (a *App) SelectElement(id string) {
	a.decks.SelectElement(a.ctx, id)
}

func (a *App) ClearSelection() {
	a.decks.ClearSelection(a.ctx)
}

// GetDeckState returns the open presentation with cursor and selection,
// or nil when nothing is open.
func (a *App) GetDeckState() *domain.DeckState {
	ds, ok := a.decks.DeckState()
	if !ok {
		return nil
	}
	return ds
}
