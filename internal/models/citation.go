// ABOUTME: SourceCitation records the provenance of retrieved course content
// ABOUTME: Citations are shown to the end user alongside the final answer
package models

import (
	"fmt"
)

// SourceCitation identifies a chunk that backed part of an answer.
// Link is the lesson source link when one is known, otherwise "".
type SourceCitation struct {
	CourseTitle  string `json:"course_title"`
	LessonNumber *int   `json:"lesson_number,omitempty"`
	Link         string `json:"link,omitempty"`
}

// Label returns the display form of the citation, e.g.
// "Python Programming Course - Lesson 1" or just the course title when
// the chunk was not lesson-scoped.
func (c SourceCitation) Label() string {
	if c.LessonNumber != nil {
		return fmt.Sprintf("%s - Lesson %d", c.CourseTitle, *c.LessonNumber)
	}
	return c.CourseTitle
}
