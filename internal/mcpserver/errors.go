package mcpserver

import (
	"fmt"

	"card-admin/internal/apperr"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolResult(data any) *mcp.CallToolResult {
	return mcp.NewToolResultStructuredOnly(data)
}

func toolError(code, message string) *mcp.CallToolResult {
	result := mcp.NewToolResultStructured(
		map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		},
		fmt.Sprintf("%s: %s", code, message),
	)
	result.IsError = true
	return result
}

// mapDomainError hides internal causes; only the code reaches the client.
func mapDomainError(err error) *mcp.CallToolResult {
	if err == nil {
		return toolError(apperr.ErrInternal.Error(), "unknown error")
	}
	code := apperr.Code(err)
	if code == apperr.ErrInternal.Error() {
		return toolError(code, "internal error")
	}
	return toolError(code, err.Error())
}
