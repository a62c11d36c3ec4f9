package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerReportTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_admin_game_totals",
			mcp.WithDescription("Bet, win, commission and NTP totals for an admin. Defaults to today."),
			mcp.WithString("admin_id", mcp.Required(), mcp.Description("Admin id")),
			mcp.WithString("from", mcp.Description("RFC3339 start, inclusive")),
			mcp.WithString("to", mcp.Description("RFC3339 end, inclusive")),
		),
		s.handleAdminGameTotals,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_admin_winnings",
			mcp.WithDescription("Ledger entries for an admin, newest first"),
			mcp.WithString("admin_id", mcp.Required(), mcp.Description("Admin id")),
			mcp.WithString("from", mcp.Description("RFC3339 start, inclusive")),
			mcp.WithString("to", mcp.Description("RFC3339 end, inclusive")),
		),
		s.handleListAdminWinnings,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"get_current_game",
			mcp.WithDescription("Most recently created game"),
		),
		s.handleCurrentGame,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"list_admins",
			mcp.WithDescription("List admins with wallet balances"),
			mcp.WithNumber("limit", mcp.Description("Page size, default 50, max 500")),
			mcp.WithNumber("offset", mcp.Description("Page offset, default 0")),
		),
		s.handleListAdmins,
	)
}

func (s *Server) handleAdminGameTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adminID, err := request.RequireString("admin_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	from, err := optionalTime(request, "from")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	to, err := optionalTime(request, "to")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	totals, err := s.reports.AdminGameTotals(ctx, adminID, from, to)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(totals), nil
}

func (s *Server) handleListAdminWinnings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adminID, err := request.RequireString("admin_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	from, err := optionalTime(request, "from")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	to, err := optionalTime(request, "to")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	rows, err := s.reports.AdminWinnings(ctx, adminID, from, to)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(map[string]any{"items": rows}), nil
}

func (s *Server) handleCurrentGame(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	g, err := s.admins.CurrentGame(ctx)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(g), nil
}

func (s *Server) handleListAdmins(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultPageLimit)
	offset := request.GetInt("offset", 0)
	limit, offset = clampPagination(limit, offset, maxPageLimit)
	resp, err := s.admins.List(ctx, limit, offset)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(resp), nil
}
