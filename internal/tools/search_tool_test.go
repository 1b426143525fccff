// ABOUTME: Tests for the search_course_content tool
// ABOUTME: Covers formatting, filter echo, resolution misses, and failures
package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/storage"
)

// fakeSearcher returns canned hits or a canned error and records the
// arguments it was called with
type fakeSearcher struct {
	hits []models.SearchHit
	err  error

	gotQuery  string
	gotCourse string
	gotLesson *int
}

func (f *fakeSearcher) Search(_ context.Context, query, courseName string, lessonNumber *int) ([]models.SearchHit, error) {
	f.gotQuery = query
	f.gotCourse = courseName
	f.gotLesson = lessonNumber
	return f.hits, f.err
}

func intPtr(n int) *int { return &n }

func TestSearchTool_Definition(t *testing.T) {
	def := NewSearchTool(&fakeSearcher{}).Definition()

	if def.Name != "search_course_content" {
		t.Errorf("Name = %q", def.Name)
	}
	if def.Description == "" {
		t.Error("empty description")
	}
	for _, prop := range []string{"query", "course_name", "lesson_number"} {
		if _, ok := def.InputSchema.Properties[prop]; !ok {
			t.Errorf("schema missing property %q", prop)
		}
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "query" {
		t.Errorf("Required = %v, want [query]", def.InputSchema.Required)
	}
}

func TestSearchTool_SuccessfulSearch(t *testing.T) {
	searcher := &fakeSearcher{hits: []models.SearchHit{
		{Content: "First result about Python", CourseTitle: "Course A", LessonNumber: intPtr(1), LessonLink: "http://example.com/a1"},
		{Content: "Second result about programming", CourseTitle: "Course B", LessonNumber: intPtr(2), LessonLink: "http://example.com/b2"},
	}}
	tool := NewSearchTool(searcher)

	result, citations := tool.Execute(context.Background(), []byte(`{"query":"Python programming"}`))

	if !strings.Contains(result, "[Course A - Lesson 1]") || !strings.Contains(result, "[Course B - Lesson 2]") {
		t.Errorf("result missing headers: %q", result)
	}
	if !strings.Contains(result, "First result about Python") || !strings.Contains(result, "Second result about programming") {
		t.Errorf("result missing content: %q", result)
	}

	if len(citations) != 2 {
		t.Fatalf("got %d citations, want 2", len(citations))
	}
	if citations[0].Label() != "Course A - Lesson 1" || citations[1].Label() != "Course B - Lesson 2" {
		t.Errorf("citation labels = %q, %q", citations[0].Label(), citations[1].Label())
	}
	if citations[0].Link != "http://example.com/a1" {
		t.Errorf("citation link = %q", citations[0].Link)
	}
}

func TestSearchTool_PassesFiltersThrough(t *testing.T) {
	searcher := &fakeSearcher{hits: []models.SearchHit{{Content: "x", CourseTitle: "C"}}}
	tool := NewSearchTool(searcher)

	tool.Execute(context.Background(), []byte(`{"query":"content","course_name":"Python","lesson_number":1}`))

	if searcher.gotQuery != "content" || searcher.gotCourse != "Python" {
		t.Errorf("got query=%q course=%q", searcher.gotQuery, searcher.gotCourse)
	}
	if searcher.gotLesson == nil || *searcher.gotLesson != 1 {
		t.Errorf("lesson filter not passed: %v", searcher.gotLesson)
	}
}

func TestSearchTool_ChunkWithoutLessonNumber(t *testing.T) {
	searcher := &fakeSearcher{hits: []models.SearchHit{{Content: "Course overview content", CourseTitle: "Overview Course"}}}
	tool := NewSearchTool(searcher)

	result, citations := tool.Execute(context.Background(), []byte(`{"query":"overview"}`))

	if !strings.Contains(result, "[Overview Course]\n") {
		t.Errorf("header should omit lesson number: %q", result)
	}
	if len(citations) != 1 || citations[0].Label() != "Overview Course" {
		t.Errorf("citations = %+v", citations)
	}
}

func TestSearchTool_EmptyResults(t *testing.T) {
	tests := []struct {
		name string
		args string
		want string
	}{
		{"no filters", `{"query":"nonexistent topic"}`, "No relevant content found."},
		{"course filter", `{"query":"topic","course_name":"Some Course"}`, "No relevant content found in course 'Some Course'."},
		{"both filters", `{"query":"topic","course_name":"Some Course","lesson_number":5}`, "No relevant content found in course 'Some Course' in lesson 5."},
		{"lesson filter", `{"query":"topic","lesson_number":3}`, "No relevant content found in lesson 3."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := NewSearchTool(&fakeSearcher{})
			result, citations := tool.Execute(context.Background(), []byte(tt.args))
			if result != tt.want {
				t.Errorf("result = %q, want %q", result, tt.want)
			}
			if citations != nil {
				t.Errorf("empty search produced citations: %+v", citations)
			}
		})
	}
}

func TestSearchTool_CourseNotFound(t *testing.T) {
	searcher := &fakeSearcher{err: &storage.CourseNotFoundError{Name: "Nonexistent Course"}}
	tool := NewSearchTool(searcher)

	result, citations := tool.Execute(context.Background(), []byte(`{"query":"q","course_name":"Nonexistent Course"}`))

	if result != "No course found matching 'Nonexistent Course'" {
		t.Errorf("result = %q", result)
	}
	if citations != nil {
		t.Errorf("resolution miss produced citations: %+v", citations)
	}
}

func TestSearchTool_BackendFailureBecomesText(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("index unavailable")}
	tool := NewSearchTool(searcher)

	result, _ := tool.Execute(context.Background(), []byte(`{"query":"any query"}`))

	if !strings.Contains(result, "Search failed") || !strings.Contains(result, "index unavailable") {
		t.Errorf("result = %q", result)
	}
}

func TestSearchTool_InvalidArguments(t *testing.T) {
	tool := NewSearchTool(&fakeSearcher{})

	result, _ := tool.Execute(context.Background(), []byte(`{not json`))
	if !strings.Contains(result, "Invalid search arguments") {
		t.Errorf("result = %q", result)
	}

	result, _ = tool.Execute(context.Background(), []byte(`{"course_name":"X"}`))
	if !strings.Contains(result, "query is required") {
		t.Errorf("result = %q", result)
	}
}
