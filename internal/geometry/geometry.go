package geometry

// The editor lays out every slide on a fixed logical canvas of 960x540
// units (16:9). Elements store logical coordinates only; rendering surfaces
// of any pixel size map onto the canvas through the functions here.

const (
	CanvasWidth  = 960.0
	CanvasHeight = 540.0
)

// Point is a position in logical canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an extent in logical canvas units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderRect is a resolution-independent placement, each field a
// percentage of the rendering surface (0-100).
type RenderRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SurfaceRect is a placement in surface pixels.
type SurfaceRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToRenderRect converts a logical position and size to percentages of the
// rendering surface. The result depends only on the logical coordinates,
// so an element keeps its placement across any surface resize.
func ToRenderRect(pos Point, size Size) RenderRect {
	return RenderRect{
		Left:   pos.X / CanvasWidth * 100,
		Top:    pos.Y / CanvasHeight * 100,
		Width:  size.Width / CanvasWidth * 100,
		Height: size.Height / CanvasHeight * 100,
	}
}

// ToSurfaceRect maps a logical position and size onto a surface of the
// given pixel dimensions. Used by thumbnail rendering and playback.
func ToSurfaceRect(pos Point, size Size, surfaceWidth, surfaceHeight float64) SurfaceRect {
	return SurfaceRect{
		Left:   pos.X / CanvasWidth * surfaceWidth,
		Top:    pos.Y / CanvasHeight * surfaceHeight,
		Width:  size.Width / CanvasWidth * surfaceWidth,
		Height: size.Height / CanvasHeight * surfaceHeight,
	}
}

// DragDeltaToLogical converts a pixel delta from a drag or resize gesture
// into logical canvas units, accounting for the surface scale and the
// current zoom level. Zoom values <= 0 are treated as 1.
func DragDeltaToLogical(pixelDX, pixelDY, surfaceWidth, surfaceHeight, zoom float64) Point {
	if zoom <= 0 {
		zoom = 1
	}
	return Point{
		X: pixelDX / (surfaceWidth * zoom / CanvasWidth),
		Y: pixelDY / (surfaceHeight * zoom / CanvasHeight),
	}
}

// ClampPosition constrains pos so the element stays inside the canvas:
// 0 <= x <= 960-width and 0 <= y <= 540-height. An element larger than
// the canvas clamps to 0 and is allowed to overflow.
func ClampPosition(pos Point, size Size) Point {
	maxX := CanvasWidth - size.Width
	maxY := CanvasHeight - size.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	x := pos.X
	if x < 0 {
		x = 0
	}
	if x > maxX {
		x = maxX
	}
	y := pos.Y
	if y < 0 {
		y = 0
	}
	if y > maxY {
		y = maxY
	}
	return Point{X: x, Y: y}
}
