package mcpserver

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

func clampPagination(limit, offset, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// optionalTime parses an RFC3339 argument. Absent or blank yields nil.
func optionalTime(request mcp.CallToolRequest, key string) (*time.Time, error) {
	v := strings.TrimSpace(request.GetString(key, ""))
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC3339", key)
	}
	return &t, nil
}

// decimalArg accepts a JSON number or a decimal string.
func decimalArg(request mcp.CallToolRequest, key string) (decimal.Decimal, error) {
	raw, ok := request.GetArguments()[key]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s is required", key)
	}
	switch v := raw.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s must be a decimal", key)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%s must be a number", key)
	}
}
