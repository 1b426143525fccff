// ABOUTME: Generator drives the bounded tool-use conversation with the LLM
// ABOUTME: One tool round by default, then a synthesis call without tools
package core

import (
	"context"
	"fmt"

	"github.com/harper/coursechat/internal/models"
)

const systemPrompt = `You are an AI assistant specialized in course materials and educational content with access to comprehensive search and outline tools for course information.

Tool Usage:
- **search_course_content**: Use for questions about specific course content or detailed educational materials
- **get_course_outline**: Use for questions about course structure, lesson lists, or course overviews
- Synthesize tool results into accurate, fact-based responses
- If tools yield no results, state this clearly without offering alternatives

Response Protocol:
- **General knowledge questions**: Answer using existing knowledge without using tools
- **Course-specific content questions**: Use search_course_content first, then answer
- **Course outline/structure questions**: Use get_course_outline first, then answer
- **No meta-commentary**: Provide direct answers only. Do not mention "based on the search results" or "based on the outline".

When responding to outline queries, include the course title, the course link if available, and the complete lesson list with numbers and titles.

All responses must be brief, educational, clear, and example-supported when examples aid understanding. Provide only the direct answer to what was asked.`

// ChatClient is the LLM service surface the Generator depends on. A nil
// tools slice asks for a plain completion with no tool calling.
type ChatClient interface {
	Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage, tools []models.ToolDefinition) (*models.Completion, error)
}

// ToolRunner executes named tools on the LLM's behalf. Execute never fails
// the query: tool-side errors come back as textual results the LLM can read.
type ToolRunner interface {
	Definitions() []models.ToolDefinition
	Execute(ctx context.Context, name string, arguments []byte) (string, []models.SourceCitation)
}

// Generator orchestrates a single query against the LLM, letting it decide
// whether to search before answering.
type Generator struct {
	client        ChatClient
	maxToolRounds int
}

// NewGenerator creates a Generator with the default single tool round
func NewGenerator(client ChatClient) *Generator {
	return &Generator{client: client, maxToolRounds: 1}
}

// GenerateResponse answers a query. history is the formatted prior
// conversation ("" for a fresh session). The returned citations are those
// of the most recent search in this query that returned content; a direct
// answer carries none.
func (g *Generator) GenerateResponse(ctx context.Context, query, history string, tools ToolRunner) (string, []models.SourceCitation, error) {
	system := systemPrompt
	if history != "" {
		system = fmt.Sprintf("%s\n\nPrevious conversation:\n%s", systemPrompt, history)
	}

	messages := []models.ChatMessage{{Role: models.RoleUser, Content: query}}

	var definitions []models.ToolDefinition
	if tools != nil {
		definitions = tools.Definitions()
	}

	var citations []models.SourceCitation

	for round := 0; round < g.maxToolRounds; round++ {
		completion, err := g.client.Complete(ctx, system, messages, definitions)
		if err != nil {
			return "", nil, fmt.Errorf("llm request failed: %w", err)
		}
		if !completion.IsToolUse() || tools == nil {
			return completion.Text, citations, nil
		}

		messages = append(messages, models.ChatMessage{
			Role:      models.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		// Execute every requested call in the round and feed all results back
		for _, call := range completion.ToolCalls {
			result, callCitations := tools.Execute(ctx, call.Name, call.Arguments)
			if len(callCitations) > 0 {
				citations = callCitations
			}
			messages = append(messages, models.ChatMessage{
				Role:       models.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}

	// Synthesis turn: no tools offered, so this response is final
	completion, err := g.client.Complete(ctx, system, messages, nil)
	if err != nil {
		return "", nil, fmt.Errorf("llm synthesis failed: %w", err)
	}
	return completion.Text, citations, nil
}
