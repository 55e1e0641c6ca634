package app

import (
	"slides/internal/domain"
	"slides/internal/geometry"
	"slides/internal/store"
)

// ============================================================
// Elements
// ============================================================

func (a *App) AddElement(el domain.Element) *domain.Element {
	created, ok := a.decks.AddElement(a.ctx, el)
	if !ok {
		return nil
	}
	return &created
}

func (a *App) UpdateElement(elementID string, patch store.ElementPatch) bool {
	return a.decks.UpdateElement(a.ctx, elementID, patch)
}

func (a *App) DeleteElement(elementID string) bool {
	return a.decks.DeleteElement(a.ctx, elementID)
}

func (a *App) MoveElementLayer(elementID, target string) bool {
	return a.decks.MoveElementLayer(a.ctx, elementID, store.LayerTarget(target))
}

func (a *App) AlignElement(elementID, alignment string) bool {
	return a.decks.AlignElement(a.ctx, elementID, store.Alignment(alignment))
}

// DragElement applies a pixel-space drag from the canvas surface.
func (a *App) DragElement(elementID string, pixelDX, pixelDY, surfaceWidth, surfaceHeight, zoom float64) bool {
	return a.decks.DragElement(a.ctx, elementID, pixelDX, pixelDY, surfaceWidth, surfaceHeight, zoom)
}

// ElementRenderRect returns an element's placement as percentages of the
// rendering surface.
func (a *App) ElementRenderRect(elementID string) *geometry.RenderRect {
	ds, ok := a.decks.DeckState()
	if !ok {
		return nil
	}
	el, _ := ds.Presentation.FindElement(elementID)
	if el == nil {
		return nil
	}
	rect := geometry.ToRenderRect(el.Position, el.Size)
	return &rect
}
