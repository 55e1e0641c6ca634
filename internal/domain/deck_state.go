package domain

// DeckState is the complete editing state for one presentation, returned
// to the frontend to render the editor canvas.
type DeckState struct {
	Presentation      Presentation `json:"presentation"`
	SlideIndex        int          `json:"slideIndex"`
	SelectedElementID string       `json:"selectedElementId,omitempty"`
}
