package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerSettlementTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"settle_game",
			mcp.WithDescription("Pay every admin with a stake on the game's winning card. Safe to repeat."),
			mcp.WithString("game_id", mcp.Required(), mcp.Description("Game id")),
		),
		s.handleSettleGame,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"add_admin_winning",
			mcp.WithDescription("Record a manual winning and credit the admin wallet"),
			mcp.WithString("admin_id", mcp.Required(), mcp.Description("Admin id")),
			mcp.WithString("game_id", mcp.Required(), mcp.Description("Game id")),
			mcp.WithNumber("amount", mcp.Required(), mcp.Description("Positive amount")),
		),
		s.handleAddAdminWinning,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"backfill_admin_winnings",
			mcp.WithDescription("Recompute and append winnings for every game the admin bet in. Not idempotent."),
			mcp.WithString("admin_id", mcp.Required(), mcp.Description("Admin id")),
		),
		s.handleBackfillAdminWinnings,
	)
}

func (s *Server) handleSettleGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gameID, err := request.RequireString("game_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	res, err := s.engine.SettleGame(ctx, gameID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(res), nil
}

func (s *Server) handleAddAdminWinning(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adminID, err := request.RequireString("admin_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	gameID, err := request.RequireString("game_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	amount, err := decimalArg(request, "amount")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	entry, balance, err := s.engine.AddAdminWinning(ctx, adminID, gameID, amount)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(map[string]any{"entry": entry, "wallet": balance}), nil
}

func (s *Server) handleBackfillAdminWinnings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	adminID, err := request.RequireString("admin_id")
	if err != nil {
		return toolError("invalid_request", err.Error()), nil
	}
	res, err := s.engine.BackfillAdminWinnings(ctx, adminID)
	if err != nil {
		return mapDomainError(err), nil
	}
	return toolResult(res), nil
}
