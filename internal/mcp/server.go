package mcpserver

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"slides/internal/service"
)

// Server exposes the deck collection as MCP tools so AI agents can
// build and present slide decks.
type Server struct {
	mcp      *server.MCPServer
	decks    *service.DeckService
	playback *service.PlaybackService
}

// Deps are the services the tools operate on, injected by the caller.
type Deps struct {
	Decks    *service.DeckService
	Playback *service.PlaybackService
}

// New builds the server and registers every tool group.
func New(deps Deps) *Server {
	s := &Server{
		mcp: server.NewMCPServer(
			"slides-mcp",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
		decks:    deps.Decks,
		playback: deps.Playback,
	}

	s.registerDeckTools()
	s.registerSlideTools()
	s.registerElementTools()
	s.registerPlaybackTools()

	return s
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	log.Println("[MCP] Starting stdio server...")
	return server.ServeStdio(s.mcp)
}

// ── Helpers ────────────────────────────────────────────────

// toolText wraps plain text as a tool result.
func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// toolJSON serializes v and wraps it as a text tool result.
func toolJSON(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return toolText(string(data)), nil
}

// requireOpenDeck fails a tool when no presentation is open.
func (s *Server) requireOpenDeck() error {
	if _, ok := s.decks.DeckState(); !ok {
		return fmt.Errorf("no presentation open (use open_presentation first)")
	}
	return nil
}
