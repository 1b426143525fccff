// ABOUTME: MCP tool registration for the course materials server
// ABOUTME: Bridges the internal tool registry onto the MCP wire schema
package mcp

import (
	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/tools"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools exposes every tool registered with the manager over MCP.
// The internal schema maps one-to-one onto the MCP input schema, so the
// same definitions serve both the LLM orchestrator and MCP clients.
func RegisterTools(server *mcpserver.MCPServer, manager *tools.Manager) *Handlers {
	handlers := &Handlers{manager: manager}

	for _, def := range manager.Definitions() {
		server.AddTool(toMCPTool(def), handlers.Dispatch(def.Name))
	}

	return handlers
}

// toMCPTool converts an internal tool definition to the MCP format
func toMCPTool(def models.ToolDefinition) mcp.Tool {
	return mcp.Tool{
		Name:        def.Name,
		Description: def.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       def.InputSchema.Type,
			Properties: def.InputSchema.Properties,
			Required:   def.InputSchema.Required,
		},
	}
}
