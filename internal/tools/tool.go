// ABOUTME: Tool is the capability surface offered to the LLM
// ABOUTME: Execution failures become textual results, never hard errors
package tools

import (
	"context"

	"github.com/harper/coursechat/internal/models"
)

// Tool is a named capability the LLM can invoke with JSON arguments.
// Execute returns the textual result fed back to the LLM plus the source
// citations of any content it returned. Failures are reported inside the
// text so the LLM can read them and respond accordingly.
type Tool interface {
	Definition() models.ToolDefinition
	Execute(ctx context.Context, arguments []byte) (string, []models.SourceCitation)
}
