// ABOUTME: Manager is the name-to-tool registry the orchestrator dispatches through
// ABOUTME: Unknown tool names come back as textual results the LLM can read
package tools

import (
	"context"
	"fmt"

	"github.com/harper/coursechat/internal/models"
)

// Manager registers tools and dispatches execution requests by name
type Manager struct {
	tools map[string]Tool
	order []string
}

// NewManager creates an empty tool registry
func NewManager() *Manager {
	return &Manager{tools: make(map[string]Tool)}
}

// Register adds a tool under its declared name, replacing any previous
// registration with the same name
func (m *Manager) Register(tool Tool) {
	name := tool.Definition().Name
	if _, exists := m.tools[name]; !exists {
		m.order = append(m.order, name)
	}
	m.tools[name] = tool
}

// Definitions returns every registered tool's definition in registration order
func (m *Manager) Definitions() []models.ToolDefinition {
	definitions := make([]models.ToolDefinition, 0, len(m.order))
	for _, name := range m.order {
		definitions = append(definitions, m.tools[name].Definition())
	}
	return definitions
}

// Execute dispatches to the named tool. An unknown name is a textual
// result, not an error, so the LLM can recover.
func (m *Manager) Execute(ctx context.Context, name string, arguments []byte) (string, []models.SourceCitation) {
	tool, ok := m.tools[name]
	if !ok {
		return fmt.Sprintf("Tool '%s' not found", name), nil
	}
	return tool.Execute(ctx, arguments)
}
