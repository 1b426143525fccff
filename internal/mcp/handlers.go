// ABOUTME: MCP tool handler implementations for the course materials server
// ABOUTME: Dispatches call requests through the internal tool registry
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/coursechat/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handlers routes MCP tool calls to the internal tool registry
type Handlers struct {
	manager *tools.Manager
}

// Dispatch returns a handler that executes the named tool with the
// request's arguments. Tool-side failures are already textual results;
// only malformed argument payloads become MCP errors.
func (h *Handlers) Dispatch(name string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments, err := json.Marshal(request.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		// Citations stay with the orchestrator and CLI; MCP clients get
		// the formatted text, which already carries the provenance headers
		result, _ := h.manager.Execute(ctx, name, arguments)
		return mcp.NewToolResultText(result), nil
	}
}
