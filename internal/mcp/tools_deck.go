package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"slides/internal/domain"
)

func (s *Server) registerDeckTools() {
	// ── list_presentations ─────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_presentations",
		mcp.WithDescription("List all presentations (excluding trashed ones)"),
	), s.handleListPresentations)

	// ── list_templates ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_templates",
		mcp.WithDescription("List the built-in deck templates"),
	), s.handleListTemplates)

	// ── create_presentation ────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_presentation",
		mcp.WithDescription("Create a new presentation and open it for editing"),
		mcp.WithString("title",
			mcp.Description("Presentation title"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("Optional description"),
		),
		mcp.WithString("templateId",
			mcp.Description("Optional template to seed the deck from (see list_templates)"),
		),
	), s.handleCreatePresentation)

	// ── open_presentation ──────────────────────────────
	s.mcp.AddTool(mcp.NewTool("open_presentation",
		mcp.WithDescription("Open a presentation for editing. Slide and element tools act on the open deck."),
		mcp.WithString("presentationId",
			mcp.Description("ID of the presentation"),
			mcp.Required(),
		),
	), s.handleOpenPresentation)

	// ── get_deck_state ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_deck_state",
		mcp.WithDescription("Get the open presentation with its current slide index and selected element"),
	), s.handleGetDeckState)

	// ── trash_presentation ─────────────────────────────
	s.mcp.AddTool(mcp.NewTool("trash_presentation",
		mcp.WithDescription("Move a presentation to the trash (recoverable for 30 days)"),
		mcp.WithString("presentationId",
			mcp.Description("ID of the presentation"),
			mcp.Required(),
		),
	), s.handleTrashPresentation)

	// ── restore_presentation ───────────────────────────
	s.mcp.AddTool(mcp.NewTool("restore_presentation",
		mcp.WithDescription("Restore a presentation from the trash"),
		mcp.WithString("presentationId",
			mcp.Description("ID of the presentation"),
			mcp.Required(),
		),
	), s.handleRestorePresentation)

	// ── share_presentation ─────────────────────────────
	s.mcp.AddTool(mcp.NewTool("share_presentation",
		mcp.WithDescription("Grant a user access to a presentation"),
		mcp.WithString("presentationId",
			mcp.Description("ID of the presentation"),
			mcp.Required(),
		),
		mcp.WithString("email",
			mcp.Description("Email address of the grantee"),
			mcp.Required(),
		),
		mcp.WithString("role",
			mcp.Description("Role to grant: viewer or editor"),
			mcp.Required(),
		),
	), s.handleSharePresentation)
}

func (s *Server) handleListPresentations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(s.decks.ListPresentations())
}

func (s *Server) handleListTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolJSON(s.decks.ListTemplates())
}

func (s *Server) handleCreatePresentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	p, err := s.decks.CreatePresentation(ctx, title, req.GetString("description", ""), req.GetString("templateId", ""))
	if err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	return toolJSON(p)
}

func (s *Server) handleOpenPresentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("presentationId", "")
	if id == "" {
		return nil, fmt.Errorf("presentationId is required")
	}
	if !s.decks.OpenPresentation(ctx, id) {
		return nil, fmt.Errorf("presentation not found: %s", id)
	}
	return toolText(fmt.Sprintf("Opened presentation %s", id)), nil
}

func (s *Server) handleGetDeckState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ds, ok := s.decks.DeckState()
	if !ok {
		return nil, fmt.Errorf("no presentation open")
	}
	return toolJSON(ds)
}

func (s *Server) handleTrashPresentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("presentationId", "")
	if !s.decks.MoveToTrash(ctx, id) {
		return nil, fmt.Errorf("presentation not found: %s", id)
	}
	return toolText(fmt.Sprintf("Presentation %s moved to trash", id)), nil
}

func (s *Server) handleRestorePresentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("presentationId", "")
	if !s.decks.RestoreFromTrash(ctx, id) {
		return nil, fmt.Errorf("presentation not found in trash: %s", id)
	}
	return toolText(fmt.Sprintf("Presentation %s restored", id)), nil
}

func (s *Server) handleSharePresentation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("presentationId", "")
	email := req.GetString("email", "")
	role := domain.Role(req.GetString("role", ""))
	if email == "" || (role != domain.RoleViewer && role != domain.RoleEditor) {
		return nil, fmt.Errorf("email and a role of viewer or editor are required")
	}
	if !s.decks.SharePresentation(ctx, id, email, role) {
		return nil, fmt.Errorf("presentation not found: %s", id)
	}
	return toolText(fmt.Sprintf("Granted %s to %s", role, email)), nil
}
