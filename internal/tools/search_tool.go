// ABOUTME: SearchTool exposes semantic course content search to the LLM
// ABOUTME: Formats hits into tagged text blocks and collects their citations
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/storage"
)

// Searcher is the content search surface the SearchTool depends on
type Searcher interface {
	Search(ctx context.Context, query string, courseName string, lessonNumber *int) ([]models.SearchHit, error)
}

// SearchTool implements the search_course_content capability
type SearchTool struct {
	store Searcher
}

// NewSearchTool creates a SearchTool over a content search backend
func NewSearchTool(store Searcher) *SearchTool {
	return &SearchTool{store: store}
}

type searchArgs struct {
	Query        string `json:"query"`
	CourseName   string `json:"course_name"`
	LessonNumber *int   `json:"lesson_number"`
}

// Definition declares the tool's name, description, and parameter schema
func (t *SearchTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "search_course_content",
		Description: "Search course materials with smart course name matching and lesson filtering",
		InputSchema: models.ToolSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What to search for in the course content",
				},
				"course_name": map[string]interface{}{
					"type":        "string",
					"description": "Course title (partial matches work, e.g. 'MCP', 'Introduction')",
				},
				"lesson_number": map[string]interface{}{
					"type":        "integer",
					"description": "Specific lesson number to search within (e.g. 1, 2, 3)",
				},
			},
			Required: []string{"query"},
		},
	}
}

// Execute runs a search with the LLM-supplied arguments. Resolution misses,
// empty results, and backend failures all come back as readable text.
func (t *SearchTool) Execute(ctx context.Context, arguments []byte) (string, []models.SourceCitation) {
	var args searchArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return fmt.Sprintf("Invalid search arguments: %v", err), nil
	}
	if strings.TrimSpace(args.Query) == "" {
		return "Invalid search arguments: query is required", nil
	}

	hits, err := t.store.Search(ctx, args.Query, args.CourseName, args.LessonNumber)
	if err != nil {
		var notFound *storage.CourseNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Sprintf("No course found matching '%s'", notFound.Name), nil
		}
		return fmt.Sprintf("Search failed: %v", err), nil
	}

	if len(hits) == 0 {
		return emptyResultMessage(args.CourseName, args.LessonNumber), nil
	}

	return formatHits(hits)
}

// emptyResultMessage echoes the active filters so the LLM can tell the
// user exactly what was searched
func emptyResultMessage(courseName string, lessonNumber *int) string {
	var sb strings.Builder
	sb.WriteString("No relevant content found")
	if courseName != "" {
		fmt.Fprintf(&sb, " in course '%s'", courseName)
	}
	if lessonNumber != nil {
		fmt.Fprintf(&sb, " in lesson %d", *lessonNumber)
	}
	sb.WriteString(".")
	return sb.String()
}

// formatHits renders hits as "[Course - Lesson N]" tagged blocks and
// builds one citation per hit
func formatHits(hits []models.SearchHit) (string, []models.SourceCitation) {
	blocks := make([]string, 0, len(hits))
	citations := make([]models.SourceCitation, 0, len(hits))
	for _, hit := range hits {
		citation := hit.Citation()
		blocks = append(blocks, fmt.Sprintf("[%s]\n%s", citation.Label(), hit.Content))
		citations = append(citations, citation)
	}
	return strings.Join(blocks, "\n\n"), citations
}
