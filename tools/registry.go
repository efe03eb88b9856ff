package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tkaria/flightsweep/log"
	"github.com/tkaria/flightsweep/logctx"
)

// Registry manages the registration of flight-search tools
type Registry struct {
	tools  []Tool
	byName map[string]Tool
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:  make([]Tool, 0),
		byName: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Registering a name twice replaces
// the earlier tool.
func (r *Registry) Register(t Tool) {
	name := t.Definition().Name
	if _, exists := r.byName[name]; exists {
		for i := range r.tools {
			if r.tools[i].Definition().Name == name {
				r.tools[i] = t
			}
		}
	} else {
		r.tools = append(r.tools, t)
	}
	r.byName[name] = t
}

// Tools returns all registered tools in registration order
func (r *Registry) Tools() []Tool {
	return r.tools
}

// Attach binds every registered tool onto srv. Each invocation gets a fresh
// request ID on its context for log correlation.
func (r *Registry) Attach(srv *server.MCPServer) {
	for _, t := range r.tools {
		tool := t
		srv.AddTool(tool.Definition(), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			ctx = logctx.WithRequestID(ctx, logctx.NewRequestID())
			log.Infof(ctx, "Tool call: %s", tool.Definition().Name)
			return tool.Handle(ctx, req)
		})
	}
}

// Execute runs a registered tool by name
func (r *Registry) Execute(ctx context.Context, name string, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return t.Handle(ctx, req)
}
