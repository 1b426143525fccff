// ABOUTME: Tests for CourseChunk identifier generation
// ABOUTME: Verifies stable IDs derived from course title and index

package models

import "testing"

func TestCourseChunk_ID(t *testing.T) {
	lesson := 1

	tests := []struct {
		name  string
		chunk CourseChunk
		want  string
	}{
		{
			name:  "title with spaces",
			chunk: CourseChunk{CourseTitle: "Test Course", ChunkIndex: 0},
			want:  "Test_Course_0",
		},
		{
			name:  "multi word title",
			chunk: CourseChunk{CourseTitle: "Python for Beginners", ChunkIndex: 12},
			want:  "Python_for_Beginners_12",
		},
		{
			name:  "lesson number does not affect id",
			chunk: CourseChunk{CourseTitle: "Go Basics", LessonNumber: &lesson, ChunkIndex: 3},
			want:  "Go_Basics_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.chunk.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCourseChunk_ID_Stable(t *testing.T) {
	chunk := CourseChunk{CourseTitle: "Stable Course", ChunkIndex: 7}
	if chunk.ID() != chunk.ID() {
		t.Error("ID() should be deterministic for the same chunk")
	}
}
