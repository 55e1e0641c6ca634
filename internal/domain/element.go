package domain

import (
	"github.com/google/uuid"

	"slides/internal/geometry"
)

// ElementType is the closed set of visual element kinds.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
	ElementShape ElementType = "shape"
	ElementVideo ElementType = "video"
	ElementChart ElementType = "chart"
	ElementTable ElementType = "table"
	ElementIcon  ElementType = "icon"
	ElementCode  ElementType = "code"
)

// Style is an open bag of presentation attributes (color, font, border,
// filters, per-type sub-schema). The store never validates its keys; the
// rendering layer owns interpretation.
type Style map[string]any

// Clone returns an independent shallow copy of the style bag.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge overlays other onto s, returning the result. Keys in other win.
func (s Style) Merge(other Style) Style {
	if len(other) == 0 {
		return s
	}
	out := s.Clone()
	if out == nil {
		out = make(Style, len(other))
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// AnimationType is the entrance animation of an element.
type AnimationType string

const (
	AnimationFadeIn  AnimationType = "fadeIn"
	AnimationSlideIn AnimationType = "slideIn"
	AnimationZoomIn  AnimationType = "zoomIn"
	AnimationBounce  AnimationType = "bounce"
)

// Animation configures the entrance animation of an element. The element
// becomes visible DelayMs after its slide activates during playback.
type Animation struct {
	Type       AnimationType `json:"type"`
	DurationMs int           `json:"duration"`
	DelayMs    int           `json:"delay"`
	Easing     string        `json:"easing,omitempty"`
}

// Per-type payloads. Exactly one is set, matching the element's Type.

type TextPayload struct {
	Text string `json:"text"`
}

type ImagePayload struct {
	URL string `json:"url"` // URL or data URI
}

type ShapePayload struct {
	Shape string `json:"shape"` // shape-name token, e.g. "rectangle", "star"
}

type VideoPayload struct {
	URL string `json:"url"`
}

type ChartPayload struct {
	ChartType string    `json:"chartType"` // "bar", "line", "pie"
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
}

type TablePayload struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type IconPayload struct {
	Icon string `json:"icon"` // icon-name token
}

type CodePayload struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	FilePath string `json:"filePath,omitempty"` // optional linked source file
}

// Element is one positioned visual object on a slide. Position and size are
// logical canvas units. The payload pointer matching Type carries the
// content; the rest stay nil.
type Element struct {
	ID        string         `json:"id"`
	Type      ElementType    `json:"type"`
	Position  geometry.Point `json:"position"`
	Size      geometry.Size  `json:"size"`
	Rotation  float64        `json:"rotation,omitempty"`
	Style     Style          `json:"style,omitempty"`
	Animation *Animation     `json:"animation,omitempty"`

	Text  *TextPayload  `json:"text,omitempty"`
	Image *ImagePayload `json:"image,omitempty"`
	Shape *ShapePayload `json:"shape,omitempty"`
	Video *VideoPayload `json:"video,omitempty"`
	Chart *ChartPayload `json:"chart,omitempty"`
	Table *TablePayload `json:"table,omitempty"`
	Icon  *IconPayload  `json:"icon,omitempty"`
	Code  *CodePayload  `json:"code,omitempty"`
}

// NewElement assigns a fresh id to the given element. Callers fill type,
// payload, and geometry; the store appends it to the top of the z-order.
func NewElement(el Element) Element {
	el.ID = uuid.New().String()
	return el
}
