// ABOUTME: ToolDefinition declares a callable capability offered to the LLM
// ABOUTME: Schema shape mirrors JSON Schema so it converts to OpenAI and MCP formats
package models

// ToolSchema is the JSON Schema for a tool's input object.
type ToolSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Required   []string               `json:"required,omitempty"`
}

// ToolDefinition is the declared surface of a tool: name, description,
// and parameter schema, independent of any particular LLM provider.
type ToolDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	InputSchema ToolSchema `json:"input_schema"`
}
