package domain

import "github.com/google/uuid"

// BackgroundType selects which background variant is active.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// GradientKind is the gradient shape.
type GradientKind string

const (
	GradientLinear GradientKind = "linear"
	GradientRadial GradientKind = "radial"
)

// GradientStop is one color stop, offset in [0,1]. Stop order is significant.
type GradientStop struct {
	Color  string  `json:"color"`
	Offset float64 `json:"offset"`
}

// Gradient describes a linear or radial background gradient.
type Gradient struct {
	Kind  GradientKind   `json:"kind"`
	Angle float64        `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// Background is one of solid color, gradient, or image. The variants are
// mutually exclusive; setting one discards the others (last set wins).
type Background struct {
	Type     BackgroundType `json:"type"`
	Color    string         `json:"color,omitempty"`
	Gradient *Gradient      `json:"gradient,omitempty"`
	Image    string         `json:"image,omitempty"` // URL or data URI
}

// TransitionType is the animation applied when a slide becomes active
// during playback.
type TransitionType string

const (
	TransitionNone  TransitionType = "none"
	TransitionFade  TransitionType = "fade"
	TransitionSlide TransitionType = "slide"
	TransitionZoom  TransitionType = "zoom"
	TransitionBlur  TransitionType = "blur"
)

// Transition configures the entrance animation of a slide.
type Transition struct {
	Type       TransitionType `json:"type"`
	DurationMs int            `json:"duration"`
}

// Slide is one page of a presentation. Element order is paint order:
// later entries render on top.
type Slide struct {
	ID         string     `json:"id"`
	Elements   []Element  `json:"elements"`
	Background Background `json:"background"`
	Notes      string     `json:"notes,omitempty"` // editor-only, hidden in playback
	Transition Transition `json:"transition"`
}

// NewSlide creates an empty slide with a white solid background.
func NewSlide() Slide {
	return Slide{
		ID:         uuid.New().String(),
		Elements:   []Element{},
		Background: Background{Type: BackgroundSolid, Color: "#ffffff"},
		Transition: Transition{Type: TransitionNone},
	}
}
