// ABOUTME: CourseChunk represents a bounded span of course text for embedding
// ABOUTME: Chunks carry course/lesson provenance and a sequential index
package models

import (
	"strconv"
	"strings"
)

// CourseChunk is the unit of retrieval: a text span tagged with its
// owning course, the lesson it falls within (nil for preamble text that
// precedes the first lesson marker), and its position in the course.
type CourseChunk struct {
	Content      string `json:"content"`
	CourseTitle  string `json:"course_title"`
	LessonNumber *int   `json:"lesson_number,omitempty"`
	ChunkIndex   int    `json:"chunk_index"`
}

// ID returns the stable identifier for this chunk, derived from the
// course title and chunk index so re-ingestion produces the same IDs.
func (c *CourseChunk) ID() string {
	return strings.ReplaceAll(c.CourseTitle, " ", "_") + "_" + strconv.Itoa(c.ChunkIndex)
}
