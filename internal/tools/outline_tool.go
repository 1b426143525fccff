// ABOUTME: OutlineTool returns a course's structure for outline questions
// ABOUTME: Resolves fuzzy course titles, then lists link and numbered lessons
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

// CourseReader is the catalog surface the OutlineTool depends on
type CourseReader interface {
	ResolveCourseName(ctx context.Context, name string) (string, error)
	GetCourse(title string) (*models.Course, error)
}

// OutlineTool implements the get_course_outline capability
type OutlineTool struct {
	store CourseReader
}

// NewOutlineTool creates an OutlineTool over a course catalog
func NewOutlineTool(store CourseReader) *OutlineTool {
	return &OutlineTool{store: store}
}

type outlineArgs struct {
	CourseName string `json:"course_name"`
}

// Definition declares the tool's name, description, and parameter schema
func (t *OutlineTool) Definition() models.ToolDefinition {
	return models.ToolDefinition{
		Name:        "get_course_outline",
		Description: "Get the outline of a course: title, link, and its complete lesson list",
		InputSchema: models.ToolSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"course_name": map[string]interface{}{
					"type":        "string",
					"description": "Course title (partial matches work, e.g. 'MCP', 'Introduction')",
				},
			},
			Required: []string{"course_name"},
		},
	}
}

// Execute resolves the course name and formats its outline. The outline
// itself is not retrieved content, so no citations are produced.
func (t *OutlineTool) Execute(ctx context.Context, arguments []byte) (string, []models.SourceCitation) {
	var args outlineArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return fmt.Sprintf("Invalid outline arguments: %v", err), nil
	}
	if strings.TrimSpace(args.CourseName) == "" {
		return "Invalid outline arguments: course_name is required", nil
	}

	title, err := t.store.ResolveCourseName(ctx, args.CourseName)
	if err != nil {
		var notFound *storage.CourseNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Sprintf("No course found matching '%s'", notFound.Name), nil
		}
		return fmt.Sprintf("Outline lookup failed: %v", err), nil
	}

	course, err := t.store.GetCourse(title)
	if err != nil {
		return fmt.Sprintf("Outline lookup failed: %v", err), nil
	}
	if course == nil {
		return fmt.Sprintf("No course found matching '%s'", args.CourseName), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Course: %s\n", course.Title)
	if course.CourseLink != "" {
		fmt.Fprintf(&sb, "Course Link: %s\n", course.CourseLink)
	}
	fmt.Fprintf(&sb, "Lessons (%d):\n", len(course.Lessons))
	for _, lesson := range course.Lessons {
		fmt.Fprintf(&sb, "  %d. %s\n", lesson.Number, lesson.Title)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
