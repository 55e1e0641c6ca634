package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"slides/internal/domain"
	"slides/internal/geometry"
)

// Thumbnail dimensions keep the 16:9 canvas aspect.
const (
	ThumbnailWidth  = 480
	ThumbnailHeight = 270
)

// RenderThumbnail rasterizes a slide to a PNG file. Elements are drawn
// in z-order; text is rendered with the bundled Go font, other element
// types as placeholder boxes with a type label.
func RenderThumbnail(slide domain.Slide, filename string) error {
	dc := gg.NewContext(ThumbnailWidth, ThumbnailHeight)

	drawBackground(dc, slide.Background)

	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	for _, el := range slide.Elements {
		rect := geometry.ToSurfaceRect(el.Position, el.Size, ThumbnailWidth, ThumbnailHeight)
		drawElement(dc, ttfFont, el, rect)
	}

	return dc.SavePNG(filename)
}

func drawBackground(dc *gg.Context, bg domain.Background) {
	switch bg.Type {
	case domain.BackgroundGradient:
		if bg.Gradient != nil && len(bg.Gradient.Stops) > 0 {
			drawGradient(dc, *bg.Gradient)
			return
		}
		dc.SetColor(color.White)
		dc.Clear()
	case domain.BackgroundSolid:
		dc.SetHexColor(orDefault(bg.Color, "#ffffff"))
		dc.Clear()
	default:
		// Image backgrounds render as a neutral fill in thumbnails.
		dc.SetHexColor("#d0d0d0")
		dc.Clear()
	}
}

func drawGradient(dc *gg.Context, g domain.Gradient) {
	var grad gg.Gradient
	if g.Kind == domain.GradientRadial {
		cx, cy := float64(ThumbnailWidth)/2, float64(ThumbnailHeight)/2
		r := math.Hypot(cx, cy)
		grad = gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	} else {
		// Angle 0 is left-to-right, rotating clockwise.
		rad := g.Angle * math.Pi / 180
		cx, cy := float64(ThumbnailWidth)/2, float64(ThumbnailHeight)/2
		half := math.Hypot(cx, cy)
		dx, dy := math.Cos(rad)*half, math.Sin(rad)*half
		grad = gg.NewLinearGradient(cx-dx, cy-dy, cx+dx, cy+dy)
	}
	for _, stop := range g.Stops {
		grad.AddColorStop(stop.Offset, hexColor(stop.Color))
	}
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, ThumbnailWidth, ThumbnailHeight)
	dc.Fill()
}

func drawElement(dc *gg.Context, ttfFont *truetype.Font, el domain.Element, rect geometry.SurfaceRect) {
	dc.Push()
	if el.Rotation != 0 {
		dc.RotateAbout(el.Rotation*math.Pi/180, rect.Left+rect.Width/2, rect.Top+rect.Height/2)
	}

	switch el.Type {
	case domain.ElementText:
		text := ""
		if el.Text != nil {
			text = el.Text.Text
		}
		size := 14.0
		if fs, ok := styleFontSize(el.Style); ok {
			// Style sizes are logical canvas units; scale to the thumbnail.
			size = fs * ThumbnailWidth / geometry.CanvasWidth
		}
		face := truetype.NewFace(ttfFont, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		dc.SetFontFace(face)
		dc.SetHexColor(styleColor(el.Style, "#1a1a1a"))
		dc.DrawStringWrapped(text, rect.Left, rect.Top, 0, 0, rect.Width, 1.3, gg.AlignLeft)
	default:
		dc.SetHexColor(styleColor(el.Style, "#9aa4b2"))
		dc.DrawRectangle(rect.Left, rect.Top, rect.Width, rect.Height)
		dc.Fill()
		face := truetype.NewFace(ttfFont, &truetype.Options{Size: 10, DPI: 72})
		dc.SetFontFace(face)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(string(el.Type), rect.Left+rect.Width/2, rect.Top+rect.Height/2, 0.5, 0.5)
	}

	dc.Pop()
}

// styleFontSize reads fontSize from a style map. Freshly built decks
// carry Go ints; decks revived from JSON carry float64s. Both count.
func styleFontSize(style domain.Style) (float64, bool) {
	switch v := style["fontSize"].(type) {
	case float64:
		return v, v > 0
	case int:
		return float64(v), v > 0
	}
	return 0, false
}

func styleColor(style domain.Style, fallback string) string {
	for _, key := range []string{"color", "fill", "backgroundColor"} {
		if c, ok := style[key].(string); ok && strings.HasPrefix(c, "#") {
			return c
		}
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// hexColor parses #rgb or #rrggbb; invalid input yields black.
func hexColor(s string) color.Color {
	var r, g, b uint8
	switch len(s) {
	case 4:
		fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r *= 17
		g *= 17
		b *= 17
	case 7:
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
