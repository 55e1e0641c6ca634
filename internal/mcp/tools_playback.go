package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPlaybackTools() {
	// ── start_show ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("start_show",
		mcp.WithDescription("Start a slideshow over the open presentation, beginning at the current slide"),
	), s.handleStartShow)

	// ── end_show ───────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("end_show",
		mcp.WithDescription("End the running slideshow"),
	), s.handleEndShow)

	// ── advance_show ───────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("advance_show",
		mcp.WithDescription("Move the running slideshow forward or backward, or jump to a slide"),
		mcp.WithString("direction",
			mcp.Description("One of: next, previous, jump"),
			mcp.Required(),
		),
		mcp.WithNumber("slideIndex",
			mcp.Description("Target slide index (only for direction=jump)"),
		),
	), s.handleAdvanceShow)

	// ── get_show_state ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_show_state",
		mcp.WithDescription("Get the running slideshow's slide index and play/pause state"),
	), s.handleGetShowState)
}

func (s *Server) handleStartShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.playback.StartShow(ctx)
	if err != nil {
		return nil, fmt.Errorf("start show: %w", err)
	}
	return toolJSON(state)
}

func (s *Server) handleEndShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.playback.EndShow()
	return toolText("Show ended"), nil
}

func (s *Server) handleAdvanceShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var err error
	switch dir := req.GetString("direction", ""); dir {
	case "next":
		err = s.playback.Next()
	case "previous":
		err = s.playback.Previous()
	case "jump":
		err = s.playback.JumpTo(getInt(req.GetArguments(), "slideIndex", 0))
	default:
		return nil, fmt.Errorf("direction must be next, previous or jump, got %q", dir)
	}
	if err != nil {
		return nil, err
	}
	return toolJSON(s.playback.State())
}

func (s *Server) handleGetShowState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(s.playback.State())
}
