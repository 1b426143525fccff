// ABOUTME: Tests for SourceCitation display labels
// ABOUTME: Verifies lesson-scoped and course-level label formats

package models

import "testing"

func TestSourceCitation_Label(t *testing.T) {
	lesson := 1

	tests := []struct {
		name     string
		citation SourceCitation
		want     string
	}{
		{
			name:     "with lesson number",
			citation: SourceCitation{CourseTitle: "Python Programming Course", LessonNumber: &lesson},
			want:     "Python Programming Course - Lesson 1",
		},
		{
			name:     "without lesson number",
			citation: SourceCitation{CourseTitle: "Overview Course"},
			want:     "Overview Course",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.citation.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchHit_Citation(t *testing.T) {
	lesson := 2
	hit := SearchHit{
		Content:      "some content",
		CourseTitle:  "Test Course",
		LessonNumber: &lesson,
		LessonLink:   "http://example.com/lesson2",
		Score:        0.9,
	}

	citation := hit.Citation()
	if citation.CourseTitle != "Test Course" {
		t.Errorf("CourseTitle = %q, want %q", citation.CourseTitle, "Test Course")
	}
	if citation.LessonNumber == nil || *citation.LessonNumber != 2 {
		t.Errorf("LessonNumber = %v, want 2", citation.LessonNumber)
	}
	if citation.Link != "http://example.com/lesson2" {
		t.Errorf("Link = %q, want %q", citation.Link, "http://example.com/lesson2")
	}
}
