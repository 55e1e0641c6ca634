package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"slides/internal/domain"
	"slides/internal/geometry"
	"slides/internal/store"
)

func (s *Server) registerElementTools() {
	// ── add_element ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_element",
		mcp.WithDescription("Add an element to the current slide of the open presentation. Coordinates are logical canvas units on a 960x540 canvas."),
		mcp.WithString("type",
			mcp.Description("Element type: text, image, shape, video, chart, table, icon, or code"),
			mcp.Required(),
		),
		mcp.WithNumber("x", mcp.Description("Left edge in canvas units")),
		mcp.WithNumber("y", mcp.Description("Top edge in canvas units")),
		mcp.WithNumber("width", mcp.Description("Width in canvas units")),
		mcp.WithNumber("height", mcp.Description("Height in canvas units")),
		mcp.WithString("contentJSON",
			mcp.Description(`Type-specific content, e.g. {"text":"Hello"} for text or {"url":"https://..."} for image`),
		),
		mcp.WithString("styleJSON",
			mcp.Description(`Open style bag, e.g. {"fontSize":32,"color":"#ffffff"}`),
		),
	), s.handleAddElement)

	// ── update_element ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_element",
		mcp.WithDescription("Patch an element. Only the provided fields change; style keys merge into the existing style."),
		mcp.WithString("elementId",
			mcp.Description("ID of the element"),
			mcp.Required(),
		),
		mcp.WithString("patchJSON",
			mcp.Description(`Patch object, e.g. {"position":{"x":100,"y":50},"style":{"color":"#333"},"text":{"text":"new"}}`),
			mcp.Required(),
		),
	), s.handleUpdateElement)

	// ── delete_element ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_element",
		mcp.WithDescription("Delete an element from the open presentation"),
		mcp.WithString("elementId",
			mcp.Description("ID of the element"),
			mcp.Required(),
		),
	), s.handleDeleteElement)

	// ── move_element_layer ─────────────────────────────
	s.mcp.AddTool(mcp.NewTool("move_element_layer",
		mcp.WithDescription("Move an element to the front or back of its slide's z-order"),
		mcp.WithString("elementId",
			mcp.Description("ID of the element"),
			mcp.Required(),
		),
		mcp.WithString("target",
			mcp.Description("front or back"),
			mcp.Required(),
		),
	), s.handleMoveElementLayer)

	// ── align_element ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("align_element",
		mcp.WithDescription("Horizontally align an element on the canvas"),
		mcp.WithString("elementId",
			mcp.Description("ID of the element"),
			mcp.Required(),
		),
		mcp.WithString("alignment",
			mcp.Description("left, center, or right"),
			mcp.Required(),
		),
	), s.handleAlignElement)

	// ── set_animation ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_animation",
		mcp.WithDescription("Set the entrance animation of an element"),
		mcp.WithString("elementId",
			mcp.Description("ID of the element"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Animation type: fadeIn, slideIn, zoomIn, or bounce"),
			mcp.Required(),
		),
		mcp.WithNumber("durationMs", mcp.Description("Animation duration in milliseconds")),
		mcp.WithNumber("delayMs", mcp.Description("Delay before the animation starts")),
	), s.handleSetAnimation)
}

// elementContent mirrors the per-type payload fields accepted in contentJSON.
type elementContent struct {
	Text      string     `json:"text,omitempty"`
	URL       string     `json:"url,omitempty"`
	Shape     string     `json:"shape,omitempty"`
	ChartType string     `json:"chartType,omitempty"`
	Labels    []string   `json:"labels,omitempty"`
	Values    []float64  `json:"values,omitempty"`
	Columns   []string   `json:"columns,omitempty"`
	Rows      [][]string `json:"rows,omitempty"`
	Icon      string     `json:"icon,omitempty"`
	Language  string     `json:"language,omitempty"`
	Code      string     `json:"code,omitempty"`
}

func (s *Server) handleAddElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.requireOpenDeck(); err != nil {
		return nil, err
	}

	args := req.GetArguments()
	el := domain.Element{
		Type:     domain.ElementType(req.GetString("type", "")),
		Position: geometry.Point{X: getFloat(args, "x", 80), Y: getFloat(args, "y", 60)},
		Size:     geometry.Size{Width: getFloat(args, "width", 320), Height: getFloat(args, "height", 180)},
	}

	if raw := req.GetString("contentJSON", ""); raw != "" {
		var c elementContent
		if err := parseJSON(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid contentJSON: %w", err)
		}
		switch el.Type {
		case domain.ElementText:
			el.Text = &domain.TextPayload{Text: c.Text}
		case domain.ElementImage:
			el.Image = &domain.ImagePayload{URL: c.URL}
		case domain.ElementShape:
			el.Shape = &domain.ShapePayload{Shape: c.Shape}
		case domain.ElementVideo:
			el.Video = &domain.VideoPayload{URL: c.URL}
		case domain.ElementChart:
			el.Chart = &domain.ChartPayload{ChartType: c.ChartType, Labels: c.Labels, Values: c.Values}
		case domain.ElementTable:
			el.Table = &domain.TablePayload{Columns: c.Columns, Rows: c.Rows}
		case domain.ElementIcon:
			el.Icon = &domain.IconPayload{Icon: c.Icon}
		case domain.ElementCode:
			el.Code = &domain.CodePayload{Language: c.Language, Code: c.Code}
		default:
			return nil, fmt.Errorf("unknown element type: %s", el.Type)
		}
	}

	if raw := req.GetString("styleJSON", ""); raw != "" {
		if err := parseJSON(raw, &el.Style); err != nil {
			return nil, fmt.Errorf("invalid styleJSON: %w", err)
		}
	}

	created, ok := s.decks.AddElement(ctx, el)
	if !ok {
		return nil, fmt.Errorf("add element failed")
	}
	return toolJSON(created)
}

func (s *Server) handleUpdateElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	var patch store.ElementPatch
	if err := parseJSON(req.GetString("patchJSON", ""), &patch); err != nil {
		return nil, fmt.Errorf("invalid patchJSON: %w", err)
	}
	if !s.decks.UpdateElement(ctx, elementID, patch) {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return toolText(fmt.Sprintf("Element %s updated", elementID)), nil
}

func (s *Server) handleDeleteElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	if !s.decks.DeleteElement(ctx, elementID) {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return toolText(fmt.Sprintf("Element %s deleted", elementID)), nil
}

func (s *Server) handleMoveElementLayer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	target := store.LayerTarget(req.GetString("target", ""))
	if target != store.LayerFront && target != store.LayerBack {
		return nil, fmt.Errorf("target must be front or back")
	}
	if !s.decks.MoveElementLayer(ctx, elementID, target) {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return toolText(fmt.Sprintf("Element %s moved to %s", elementID, target)), nil
}

func (s *Server) handleAlignElement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	align := store.Alignment(req.GetString("alignment", ""))
	if align != store.AlignLeft && align != store.AlignCenter && align != store.AlignRight {
		return nil, fmt.Errorf("alignment must be left, center, or right")
	}
	if !s.decks.AlignElement(ctx, elementID, align) {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return toolText(fmt.Sprintf("Element %s aligned %s", elementID, align)), nil
}

func (s *Server) handleSetAnimation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	elementID := req.GetString("elementId", "")
	args := req.GetArguments()
	anim := &domain.Animation{
		Type:       domain.AnimationType(req.GetString("type", "")),
		DurationMs: getInt(args, "durationMs", 500),
		DelayMs:    getInt(args, "delayMs", 0),
	}
	if !s.decks.UpdateElement(ctx, elementID, store.ElementPatch{Animation: anim}) {
		return nil, fmt.Errorf("element not found: %s", elementID)
	}
	return toolText(fmt.Sprintf("Animation %s set on element %s", anim.Type, elementID)), nil
}
