// ABOUTME: Course and Lesson represent ingested course documents
// ABOUTME: A course is immutable once indexed and identified by its title
package models

// Lesson represents a single lesson within a course
type Lesson struct {
	Number int    `json:"lesson_number"`
	Title  string `json:"lesson_title"`
	Link   string `json:"lesson_link,omitempty"`
}

// Course represents a full course with ordered lessons.
// The title is the unique identifier across the whole system.
type Course struct {
	Title      string   `json:"title"`
	CourseLink string   `json:"course_link,omitempty"`
	Instructor string   `json:"instructor,omitempty"`
	Lessons    []Lesson `json:"lessons"`
}

// LessonLink returns the link for the given lesson number, or "" if the
// lesson does not exist or has no link.
func (c *Course) LessonLink(number int) string {
	for _, lesson := range c.Lessons {
		if lesson.Number == number {
			return lesson.Link
		}
	}
	return ""
}
