package export

import (
	"os"
	"path/filepath"
	"testing"

	"slides/internal/domain"
	"slides/internal/geometry"
)

func TestWriteReadDeckRoundTrip(t *testing.T) {
	p := *domain.NewPresentation("roadmap", "H2 plan", nil)
	p.Slides[0].Notes = "opening remarks"
	el := domain.NewElement(domain.Element{
		Type:     domain.ElementText,
		Position: geometry.Point{X: 100, Y: 50},
		Size:     geometry.Size{Width: 400, Height: 80},
		Text:     &domain.TextPayload{Text: "Roadmap"},
	})
	p.Slides[0].Elements = append(p.Slides[0].Elements, el)

	path := filepath.Join(t.TempDir(), "roadmap.deck.json")
	if err := WriteDeck(p, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadDeck(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.ID != p.ID || got.Title != "roadmap" {
		t.Errorf("identity lost: %+v", got)
	}
	if len(got.Slides) != 1 || len(got.Slides[0].Elements) != 1 {
		t.Fatalf("structure lost: %+v", got.Slides)
	}
	if got.Slides[0].Elements[0].Text.Text != "Roadmap" {
		t.Errorf("payload lost")
	}
}

func TestWriteDeckLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	p := *domain.NewPresentation("x", "", nil)
	if err := WriteDeck(p, filepath.Join(dir, "x.json")); err != nil {
		t.Fatalf("write: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("expected only the export, found %d entries", len(entries))
	}
}

func TestReadDeckRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	os.WriteFile(path, []byte(`{"version": 99, "presentation": {}}`), 0644)
	if _, err := ReadDeck(path); err == nil {
		t.Fatal("expected version error")
	}
}

func TestStyleFontSizeAcceptsIntAndFloat(t *testing.T) {
	// Template-built decks carry int sizes until a JSON round trip
	// turns them into float64s; the renderer must read both.
	for _, style := range []domain.Style{
		{"fontSize": 44},
		{"fontSize": 44.0},
	} {
		fs, ok := styleFontSize(style)
		if !ok || fs != 44 {
			t.Errorf("styleFontSize(%v) = %v, %v; want 44, true", style, fs, ok)
		}
	}
	if _, ok := styleFontSize(domain.Style{"fontSize": "44"}); ok {
		t.Error("string fontSize should not parse")
	}
	if _, ok := styleFontSize(domain.Style{}); ok {
		t.Error("missing fontSize should not parse")
	}
}

func TestRenderThumbnail(t *testing.T) {
	slide := domain.NewSlide()
	slide.Background = domain.Background{
		Type: domain.BackgroundGradient,
		Gradient: &domain.Gradient{
			Kind:  domain.GradientLinear,
			Angle: 90,
			Stops: []domain.GradientStop{
				{Color: "#23074d", Offset: 0},
				{Color: "#cc5333", Offset: 1},
			},
		},
	}
	slide.Elements = append(slide.Elements,
		domain.NewElement(domain.Element{
			Type:     domain.ElementText,
			Position: geometry.Point{X: 80, Y: 60},
			Size:     geometry.Size{Width: 800, Height: 100},
			Style:    domain.Style{"fontSize": 48.0, "color": "#ffffff"},
			Text:     &domain.TextPayload{Text: "Quarterly Review"},
		}),
		domain.NewElement(domain.Element{
			Type:     domain.ElementShape,
			Position: geometry.Point{X: 80, Y: 300},
			Size:     geometry.Size{Width: 200, Height: 120},
			Rotation: 15,
			Shape:    &domain.ShapePayload{Shape: "rect"},
		}),
	)

	path := filepath.Join(t.TempDir(), "slide.png")
	if err := RenderThumbnail(slide, path); err != nil {
		t.Fatalf("render: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("empty thumbnail")
	}
}
