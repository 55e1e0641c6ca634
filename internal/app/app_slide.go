package app

import (
	"slides/internal/domain"
	"slides/internal/store"
)

// ============================================================
// Slides
// ============================================================

func (a *App) AddSlide() *domain.Slide {
	slide, ok := a.decks.AddSlide(a.ctx)
	if !ok {
		return nil
	}
	return &slide
}

func (a *App) DeleteSlide(slideID string) bool {
	return a.decks.DeleteSlide(a.ctx, slideID)
}

func (a *App) DuplicateSlide(slideID string) *domain.Slide {
	slide, ok := a.decks.DuplicateSlide(a.ctx, slideID)
	if !ok {
		return nil
	}
	return &slide
}

func (a *App) ReorderSlides(from, to int) bool {
	return a.decks.ReorderSlides(a.ctx, from, to)
}

func (a *App) UpdateSlide(slideID string, patch store.SlidePatch) bool {
	return a.decks.UpdateSlide(a.ctx, slideID, patch)
}
