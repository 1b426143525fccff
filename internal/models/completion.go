// ABOUTME: Chat completion protocol types shared by the orchestrator and LLM client
// ABOUTME: A Completion is either a direct answer or a set of requested tool calls
package models

import "encoding/json"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage is a single message in a completion request. Assistant
// messages that requested tools carry ToolCalls; tool result messages
// carry the ToolCallID they answer.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ToolCall is a structured request from the model to invoke a named tool.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Completion is the model's response to one request: either a direct
// textual answer or one or more tool calls to execute.
type Completion struct {
	Text      string     `json:"text"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// IsToolUse reports whether the model requested tool execution instead of
// answering directly.
func (c *Completion) IsToolUse() bool {
	return len(c.ToolCalls) > 0
}
