// Package tools exposes flight search as MCP tools.
package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool defines the interface for all flight-search tools
type Tool interface {
	// Definition returns the MCP tool schema advertised to clients
	Definition() mcp.Tool

	// Handle executes the tool for one request
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// optionalInt reads an integer argument that distinguishes "absent" from
// zero. JSON numbers arrive as float64.
func optionalInt(req mcp.CallToolRequest, key string) *int {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return nil
	}
	switch v := raw.(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}
