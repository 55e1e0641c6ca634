package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"slides/internal/domain"
	"slides/internal/store"
)

func (s *Server) registerSlideTools() {
	// ── add_slide ──────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_slide",
		mcp.WithDescription("Append a blank slide to the open presentation and select it"),
	), s.handleAddSlide)

	// ── delete_slide ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("delete_slide",
		mcp.WithDescription("Delete a slide. The last remaining slide cannot be deleted."),
		mcp.WithString("slideId",
			mcp.Description("ID of the slide"),
			mcp.Required(),
		),
	), s.handleDeleteSlide)

	// ── duplicate_slide ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("duplicate_slide",
		mcp.WithDescription("Duplicate a slide; the copy is inserted right after the original"),
		mcp.WithString("slideId",
			mcp.Description("ID of the slide"),
			mcp.Required(),
		),
	), s.handleDuplicateSlide)

	// ── reorder_slides ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("reorder_slides",
		mcp.WithDescription("Move a slide from one position to another (0-based indices)"),
		mcp.WithNumber("from",
			mcp.Description("Current index of the slide"),
			mcp.Required(),
		),
		mcp.WithNumber("to",
			mcp.Description("Target index"),
			mcp.Required(),
		),
	), s.handleReorderSlides)

	// ── select_slide ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("select_slide",
		mcp.WithDescription("Move the editing cursor to a slide (0-based, clamped to the deck)"),
		mcp.WithNumber("index",
			mcp.Description("Slide index"),
			mcp.Required(),
		),
	), s.handleSelectSlide)

	// ── set_slide_background ───────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_slide_background",
		mcp.WithDescription("Set a slide background. Exactly one of color, gradientJSON, or imageUrl applies; the variants are mutually exclusive."),
		mcp.WithString("slideId",
			mcp.Description("ID of the slide"),
			mcp.Required(),
		),
		mcp.WithString("color",
			mcp.Description("Solid background color, e.g. #1a1a2e"),
		),
		mcp.WithString("gradientJSON",
			mcp.Description(`Gradient as JSON: {"kind":"linear","angle":90,"stops":[{"color":"#000","offset":0},{"color":"#fff","offset":1}]}`),
		),
		mcp.WithString("imageUrl",
			mcp.Description("Background image URL or data URI"),
		),
	), s.handleSetSlideBackground)

	// ── set_slide_notes ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_slide_notes",
		mcp.WithDescription("Set the speaker notes of a slide"),
		mcp.WithString("slideId",
			mcp.Description("ID of the slide"),
			mcp.Required(),
		),
		mcp.WithString("notes",
			mcp.Description("Speaker notes text"),
			mcp.Required(),
		),
	), s.handleSetSlideNotes)

	// ── set_slide_transition ───────────────────────────
	s.mcp.AddTool(mcp.NewTool("set_slide_transition",
		mcp.WithDescription("Set the entrance transition of a slide"),
		mcp.WithString("slideId",
			mcp.Description("ID of the slide"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Transition type: none, fade, slide, zoom, or blur"),
			mcp.Required(),
		),
		mcp.WithNumber("durationMs",
			mcp.Description("Transition duration in milliseconds"),
		),
	), s.handleSetSlideTransition)
}

func (s *Server) handleAddSlide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.requireOpenDeck(); err != nil {
		return nil, err
	}
	slide, ok := s.decks.AddSlide(ctx)
	if !ok {
		return nil, fmt.Errorf("add slide failed")
	}
	return toolJSON(slide)
}

func (s *Server) handleDeleteSlide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slideID := req.GetString("slideId", "")
	if !s.decks.DeleteSlide(ctx, slideID) {
		return nil, fmt.Errorf("slide not found or last slide: %s", slideID)
	}
	return toolText(fmt.Sprintf("Slide %s deleted", slideID)), nil
}

func (s *Server) handleDuplicateSlide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slideID := req.GetString("slideId", "")
	slide, ok := s.decks.DuplicateSlide(ctx, slideID)
	if !ok {
		return nil, fmt.Errorf("slide not found: %s", slideID)
	}
	return toolJSON(slide)
}

func (s *Server) handleReorderSlides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	from := getInt(args, "from", -1)
	to := getInt(args, "to", -1)
	if !s.decks.ReorderSlides(ctx, from, to) {
		return nil, fmt.Errorf("invalid slide indices: %d -> %d", from, to)
	}
	return toolText(fmt.Sprintf("Slide moved from %d to %d", from, to)), nil
}

func (s *Server) handleSelectSlide(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.requireOpenDeck(); err != nil {
		return nil, err
	}
	s.decks.SelectSlide(ctx, getInt(req.GetArguments(), "index", 0))
	ds, _ := s.decks.DeckState()
	return toolText(fmt.Sprintf("Cursor on slide %d", ds.SlideIndex)), nil
}

func (s *Server) handleSetSlideBackground(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slideID := req.GetString("slideId", "")

	var bg domain.Background
	switch {
	case req.GetString("color", "") != "":
		bg = domain.Background{Type: domain.BackgroundSolid, Color: req.GetString("color", "")}
	case req.GetString("gradientJSON", "") != "":
		var g domain.Gradient
		if err := parseJSON(req.GetString("gradientJSON", ""), &g); err != nil {
			return nil, fmt.Errorf("invalid gradientJSON: %w", err)
		}
		bg = domain.Background{Type: domain.BackgroundGradient, Gradient: &g}
	case req.GetString("imageUrl", "") != "":
		bg = domain.Background{Type: domain.BackgroundImage, Image: req.GetString("imageUrl", "")}
	default:
		return nil, fmt.Errorf("one of color, gradientJSON, or imageUrl is required")
	}

	if !s.decks.UpdateSlide(ctx, slideID, store.SlidePatch{Background: &bg}) {
		return nil, fmt.Errorf("slide not found: %s", slideID)
	}
	return toolText(fmt.Sprintf("Background set on slide %s", slideID)), nil
}

func (s *Server) handleSetSlideNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slideID := req.GetString("slideId", "")
	notes := req.GetString("notes", "")
	if !s.decks.UpdateSlide(ctx, slideID, store.SlidePatch{Notes: &notes}) {
		return nil, fmt.Errorf("slide not found: %s", slideID)
	}
	return toolText(fmt.Sprintf("Notes set on slide %s", slideID)), nil
}

func (s *Server) handleSetSlideTransition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slideID := req.GetString("slideId", "")
	tr := domain.Transition{
		Type:       domain.TransitionType(req.GetString("type", "none")),
		DurationMs: getInt(req.GetArguments(), "durationMs", 300),
	}
	if !s.decks.UpdateSlide(ctx, slideID, store.SlidePatch{Transition: &tr}) {
		return nil, fmt.Errorf("slide not found: %s", slideID)
	}
	return toolText(fmt.Sprintf("Transition %s set on slide %s", tr.Type, slideID)), nil
}
