// ABOUTME: Search result types for the dual-collection vector index
// ABOUTME: Defines SearchHit for content matches and CourseMatch for catalog matches
package models

// SearchHit is a single content-collection match: the chunk text, its
// provenance, and the cosine similarity of the match.
type SearchHit struct {
	Content      string  `json:"content"`
	CourseTitle  string  `json:"course_title"`
	LessonNumber *int    `json:"lesson_number,omitempty"`
	ChunkIndex   int     `json:"chunk_index"`
	LessonLink   string  `json:"lesson_link,omitempty"`
	Score        float64 `json:"score"`
}

// Citation returns the provenance record for this hit.
func (h SearchHit) Citation() SourceCitation {
	return SourceCitation{
		CourseTitle:  h.CourseTitle,
		LessonNumber: h.LessonNumber,
		Link:         h.LessonLink,
	}
}

// CourseMatch is a catalog-collection match used for fuzzy course name
// resolution.
type CourseMatch struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}
