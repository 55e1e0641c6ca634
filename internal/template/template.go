package template

import (
	"slides/internal/domain"
	"slides/internal/geometry"
)

// Template is a predefined slide/element tree used to seed new
// presentations with placeholder content. Catalog entries hold fixed ids
// for their own bookkeeping; instantiation always mints fresh ones.
type Template struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Slides      []domain.Slide `json:"slides"`
}

// Instantiate produces a deep copy of the template's slide tree with
// every slide and element id freshly generated, so presentations created
// from the same template never alias entities. The template itself is
// never mutated.
func Instantiate(t *Template) []domain.Slide {
	slides := make([]domain.Slide, len(t.Slides))
	for i, s := range t.Slides {
		slides[i] = domain.CloneSlide(s)
	}
	return slides
}

// List returns the template catalog.
func List() []Template {
	return catalog
}

// Lookup finds a template by id.
func Lookup(id string) (*Template, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// ── Catalog ────────────────────────────────────────────────

func titleElement(text string, y float64) domain.Element {
	return domain.Element{
		ID:       "tpl-title-" + text,
		Type:     domain.ElementText,
		Position: geometry.Point{X: 80, Y: y},
		Size:     geometry.Size{Width: 800, Height: 90},
		Style:    domain.Style{"fontSize": 44, "fontWeight": "bold", "color": "#1a1a2e"},
		Text:     &domain.TextPayload{Text: text},
	}
}

func bodyElement(text string, y float64) domain.Element {
	return domain.Element{
		ID:       "tpl-body-" + text,
		Type:     domain.ElementText,
		Position: geometry.Point{X: 80, Y: y},
		Size:     geometry.Size{Width: 800, Height: 200},
		Style:    domain.Style{"fontSize": 22, "color": "#4a4a68"},
		Text:     &domain.TextPayload{Text: text},
	}
}

var catalog = []Template{
	{
		ID:          "business-pitch",
		Name:        "Business Pitch",
		Description: "Problem, solution, and numbers for an investor pitch",
		Slides: []domain.Slide{
			{
				ID: "tpl-pitch-cover",
				Background: domain.Background{
					Type: domain.BackgroundGradient,
					Gradient: &domain.Gradient{
						Kind:  domain.GradientLinear,
						Angle: 135,
						Stops: []domain.GradientStop{
							{Color: "#1a1a2e", Offset: 0},
							{Color: "#16213e", Offset: 1},
						},
					},
				},
				Transition: domain.Transition{Type: domain.TransitionFade, DurationMs: 600},
				Elements: []domain.Element{
					{
						ID:       "tpl-pitch-cover-title",
						Type:     domain.ElementText,
						Position: geometry.Point{X: 80, Y: 200},
						Size:     geometry.Size{Width: 800, Height: 100},
						Style:    domain.Style{"fontSize": 54, "fontWeight": "bold", "color": "#ffffff"},
						Text:     &domain.TextPayload{Text: "Company Name"},
					},
					{
						ID:       "tpl-pitch-cover-sub",
						Type:     domain.ElementText,
						Position: geometry.Point{X: 80, Y: 310},
						Size:     geometry.Size{Width: 800, Height: 60},
						Style:    domain.Style{"fontSize": 24, "color": "#a0a0c0"},
						Text:     &domain.TextPayload{Text: "One line that explains what you do"},
					},
				},
			},
			{
				ID:         "tpl-pitch-problem",
				Background: domain.Background{Type: domain.BackgroundSolid, Color: "#ffffff"},
				Transition: domain.Transition{Type: domain.TransitionSlide, DurationMs: 500},
				Elements: []domain.Element{
					titleElement("The Problem", 60),
					bodyElement("Describe the pain your customers feel today.", 180),
				},
			},
			{
				ID:         "tpl-pitch-numbers",
				Background: domain.Background{Type: domain.BackgroundSolid, Color: "#ffffff"},
				Transition: domain.Transition{Type: domain.TransitionZoom, DurationMs: 500},
				Elements: []domain.Element{
					titleElement("Traction", 60),
					{
						ID:       "tpl-pitch-chart",
						Type:     domain.ElementChart,
						Position: geometry.Point{X: 160, Y: 180},
						Size:     geometry.Size{Width: 640, Height: 300},
						Style:    domain.Style{"accentColor": "#16213e"},
						Chart: &domain.ChartPayload{
							ChartType: "bar",
							Labels:    []string{"Q1", "Q2", "Q3", "Q4"},
							Values:    []float64{12, 28, 51, 90},
						},
					},
				},
			},
		},
	},
	{
		ID:          "creative-portfolio",
		Name:        "Creative Portfolio",
		Description: "Image-led layout for showcasing work",
		Slides: []domain.Slide{
			{
				ID:         "tpl-folio-cover",
				Background: domain.Background{Type: domain.BackgroundSolid, Color: "#0f0f14"},
				Transition: domain.Transition{Type: domain.TransitionBlur, DurationMs: 700},
				Elements: []domain.Element{
					{
						ID:       "tpl-folio-title",
						Type:     domain.ElementText,
						Position: geometry.Point{X: 80, Y: 230},
						Size:     geometry.Size{Width: 500, Height: 80},
						Style:    domain.Style{"fontSize": 48, "color": "#f5f5f5"},
						Text:     &domain.TextPayload{Text: "Portfolio"},
					},
					{
						ID:       "tpl-folio-shape",
						Type:     domain.ElementShape,
						Position: geometry.Point{X: 620, Y: 120},
						Size:     geometry.Size{Width: 260, Height: 260},
						Rotation: 15,
						Style:    domain.Style{"fill": "#e94560"},
						Shape:    &domain.ShapePayload{Shape: "circle"},
					},
				},
			},
			{
				ID:         "tpl-folio-work",
				Background: domain.Background{Type: domain.BackgroundSolid, Color: "#ffffff"},
				Transition: domain.Transition{Type: domain.TransitionFade, DurationMs: 400},
				Elements: []domain.Element{
					titleElement("Selected Work", 60),
					{
						ID:       "tpl-folio-image",
						Type:     domain.ElementImage,
						Position: geometry.Point{X: 80, Y: 180},
						Size:     geometry.Size{Width: 380, Height: 280},
						Image:    &domain.ImagePayload{URL: ""},
					},
					{
						ID:       "tpl-folio-caption",
						Type:     domain.ElementText,
						Position: geometry.Point{X: 500, Y: 180},
						Size:     geometry.Size{Width: 380, Height: 120},
						Style:    domain.Style{"fontSize": 20, "color": "#4a4a68"},
						Text:     &domain.TextPayload{Text: "Project name and a short description."},
					},
				},
			},
		},
	},
	{
		ID:          "minimal",
		Name:        "Minimal",
		Description: "A single clean title slide",
		Slides: []domain.Slide{
			{
				ID:         "tpl-minimal-cover",
				Background: domain.Background{Type: domain.BackgroundSolid, Color: "#ffffff"},
				Transition: domain.Transition{Type: domain.TransitionNone},
				Elements: []domain.Element{
					titleElement("Title", 220),
				},
			},
		},
	},
}
