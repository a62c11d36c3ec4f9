package mcpserver

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		limit, offset       int
		wantLimit, wantOffs int
	}{
		{0, 0, defaultPageLimit, 0},
		{10, -5, 10, 0},
		{9999, 3, maxPageLimit, 3},
	}
	for _, tt := range tests {
		l, o := clampPagination(tt.limit, tt.offset, maxPageLimit)
		if l != tt.wantLimit || o != tt.wantOffs {
			t.Fatalf("clamp(%d,%d) = %d,%d want %d,%d", tt.limit, tt.offset, l, o, tt.wantLimit, tt.wantOffs)
		}
	}
}

func TestDecimalArg(t *testing.T) {
	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Arguments: map[string]any{"n": 12.5, "s": " 7.25 ", "bad": true}}}
	if d, err := decimalArg(req, "n"); err != nil || d.String() != "12.5" {
		t.Fatalf("number arg: %v %v", d, err)
	}
	if d, err := decimalArg(req, "s"); err != nil || d.String() != "7.25" {
		t.Fatalf("string arg: %v %v", d, err)
	}
	if _, err := decimalArg(req, "bad"); err == nil {
		t.Fatal("expected error for bool arg")
	}
	if _, err := decimalArg(req, "missing"); err == nil {
		t.Fatal("expected error for missing arg")
	}
}
