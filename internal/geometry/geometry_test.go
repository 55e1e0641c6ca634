package geometry_test

import (
	"testing"

	"slides/internal/geometry"
)

func TestToRenderRect_Percentages(t *testing.T) {
	r := geometry.ToRenderRect(
		geometry.Point{X: 96, Y: 54},
		geometry.Size{Width: 480, Height: 270},
	)
	if r.Left != 10 || r.Top != 10 {
		t.Errorf("expected 10%%/10%% origin, got %v/%v", r.Left, r.Top)
	}
	if r.Width != 50 || r.Height != 50 {
		t.Errorf("expected 50%%/50%% size, got %v/%v", r.Width, r.Height)
	}
}

func TestToSurfaceRect_ScalesWithSurface(t *testing.T) {
	pos := geometry.Point{X: 480, Y: 270}
	size := geometry.Size{Width: 96, Height: 54}

	small := geometry.ToSurfaceRect(pos, size, 960, 540)
	big := geometry.ToSurfaceRect(pos, size, 1920, 1080)

	if small.Left != 480 || small.Top != 270 {
		t.Errorf("1:1 surface should map identity, got %v/%v", small.Left, small.Top)
	}
	if big.Left != 960 || big.Width != 192 {
		t.Errorf("2x surface should double, got left=%v width=%v", big.Left, big.Width)
	}
}

func TestDragDeltaToLogical_Inverse(t *testing.T) {
	// A 100px drag on a 1920-wide surface at zoom 1 is 50 logical units.
	d := geometry.DragDeltaToLogical(100, 100, 1920, 1080, 1)
	if d.X != 50 || d.Y != 50 {
		t.Errorf("expected 50/50 logical delta, got %v/%v", d.X, d.Y)
	}

	// Doubling zoom halves the logical movement.
	d = geometry.DragDeltaToLogical(100, 100, 1920, 1080, 2)
	if d.X != 25 || d.Y != 25 {
		t.Errorf("expected 25/25 at zoom 2, got %v/%v", d.X, d.Y)
	}
}

func TestDragDeltaToLogical_ZeroZoomFallsBackToOne(t *testing.T) {
	d := geometry.DragDeltaToLogical(96, 54, 960, 540, 0)
	if d.X != 96 || d.Y != 54 {
		t.Errorf("zoom 0 should behave like zoom 1, got %v/%v", d.X, d.Y)
	}
}

func TestClampPosition(t *testing.T) {
	size := geometry.Size{Width: 100, Height: 100}

	cases := []struct {
		name string
		in   geometry.Point
		want geometry.Point
	}{
		{"inside untouched", geometry.Point{X: 400, Y: 200}, geometry.Point{X: 400, Y: 200}},
		{"negative clamps to zero", geometry.Point{X: -10, Y: -10}, geometry.Point{X: 0, Y: 0}},
		{"right edge", geometry.Point{X: 900, Y: 0}, geometry.Point{X: 860, Y: 0}},
		{"bottom edge", geometry.Point{X: 0, Y: 500}, geometry.Point{X: 0, Y: 440}},
	}
	for _, tc := range cases {
		got := geometry.ClampPosition(tc.in, size)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClampPosition_OversizedElement(t *testing.T) {
	// An element wider than the canvas clamps to origin and is allowed to overflow.
	got := geometry.ClampPosition(
		geometry.Point{X: 200, Y: 10},
		geometry.Size{Width: 1200, Height: 600},
	)
	if got.X != 0 || got.Y != 0 {
		t.Errorf("oversized element should clamp to origin, got %v", got)
	}
}
