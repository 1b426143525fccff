// ABOUTME: Store is the dual-collection vector index for course materials
// ABOUTME: Wraps the SQLite catalog/content collections behind an embedding layer
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/storage/sqlite"
)

// Embedder generates embedding vectors for text. Implementations must be
// deterministic for identical input so re-ingestion stays idempotent.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// Store manages the course catalog and course content collections.
// Safe for concurrent readers; writes go through SQLite transactions.
type Store struct {
	db       *sqlite.DB
	catalog  *sqlite.CatalogStore
	content  *sqlite.ContentStore
	embedder Embedder

	maxResults     int
	matchThreshold float64
}

// NewStore creates a Store over an open database
func NewStore(db *sqlite.DB, embedder Embedder, maxResults int, matchThreshold float64) *Store {
	return &Store{
		db:             db,
		catalog:        sqlite.NewCatalogStore(db),
		content:        sqlite.NewContentStore(db),
		embedder:       embedder,
		maxResults:     maxResults,
		matchThreshold: matchThreshold,
	}
}

// AddCourse indexes a course and its chunks, replacing any previously
// indexed course with the same title (idempotent re-ingestion).
func (s *Store) AddCourse(ctx context.Context, course *models.Course, chunks []models.CourseChunk) error {
	catalogVector, err := s.embedder.Embed(ctx, catalogText(course))
	if err != nil {
		return fmt.Errorf("failed to embed course metadata: %w", err)
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}
	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed chunks: %w", err)
	}

	// One transaction covers the catalog upsert and the chunk replace,
	// so a failed re-ingestion leaves the previous course state intact
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.catalog.SaveTx(tx, course, catalogVector); err != nil {
		return fmt.Errorf("failed to save course metadata: %w", err)
	}

	// Replace the course's content wholesale so stale chunks from a
	// longer previous version cannot linger
	if err := s.content.DeleteByCourseTx(tx, course.Title); err != nil {
		return fmt.Errorf("failed to clear previous chunks: %w", err)
	}
	if err := s.content.AddChunksTx(tx, chunks, vectors); err != nil {
		return fmt.Errorf("failed to save chunks: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course: %w", err)
	}
	return nil
}

// Search queries the content collection. When courseName is non-empty it
// is resolved against the catalog first; a failed resolution returns a
// *CourseNotFoundError. An empty hit list with a nil error is a valid
// no-results outcome.
func (s *Store) Search(ctx context.Context, query string, courseName string, lessonNumber *int) ([]models.SearchHit, error) {
	courseTitle := ""
	if courseName != "" {
		resolved, err := s.ResolveCourseName(ctx, courseName)
		if err != nil {
			return nil, err
		}
		courseTitle = resolved
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	hits, err := s.content.QuerySimilar(vector, s.maxResults, courseTitle, lessonNumber)
	if err != nil {
		return nil, fmt.Errorf("content query failed: %w", err)
	}

	s.attachLessonLinks(hits)
	return hits, nil
}

// attachLessonLinks fills in lesson source links from the catalog.
// Link lookup failures leave the link empty rather than failing the search.
func (s *Store) attachLessonLinks(hits []models.SearchHit) {
	courses := make(map[string]*models.Course)
	for i, hit := range hits {
		if hit.LessonNumber == nil {
			continue
		}
		course, ok := courses[hit.CourseTitle]
		if !ok {
			course, _ = s.catalog.Get(hit.CourseTitle)
			courses[hit.CourseTitle] = course
		}
		if course != nil {
			hits[i].LessonLink = course.LessonLink(*hit.LessonNumber)
		}
	}
}

// GetCourse returns an indexed course with its lessons, or nil
func (s *Store) GetCourse(title string) (*models.Course, error) {
	return s.catalog.Get(title)
}

// CourseTitles returns all indexed course titles in insertion order
func (s *Store) CourseTitles() ([]string, error) {
	return s.catalog.ListTitles()
}

// CourseCount returns the number of indexed courses
func (s *Store) CourseCount() (int, error) {
	return s.catalog.Count()
}

// ChunkCount returns the number of indexed chunks
func (s *Store) ChunkCount() (int, error) {
	return s.content.Count()
}

// LessonLink returns the source link for a lesson, or "" if unknown
func (s *Store) LessonLink(courseTitle string, lessonNumber int) (string, error) {
	course, err := s.catalog.Get(courseTitle)
	if err != nil {
		return "", err
	}
	if course == nil {
		return "", nil
	}
	return course.LessonLink(lessonNumber), nil
}

// Clear removes all indexed data from both collections
func (s *Store) Clear() error {
	if err := s.catalog.Clear(); err != nil {
		return fmt.Errorf("failed to clear catalog: %w", err)
	}
	if err := s.content.Clear(); err != nil {
		return fmt.Errorf("failed to clear content: %w", err)
	}
	return nil
}

// catalogText builds the text embedded for a course's catalog entry:
// the title plus instructor and lesson titles so partial-token queries
// ("MCP", an instructor name) still land on the right course.
func catalogText(course *models.Course) string {
	var sb strings.Builder
	sb.WriteString(course.Title)
	if course.Instructor != "" {
		sb.WriteString("\nInstructor: ")
		sb.WriteString(course.Instructor)
	}
	for _, lesson := range course.Lessons {
		sb.WriteString("\nLesson ")
		sb.WriteString(fmt.Sprintf("%d: %s", lesson.Number, lesson.Title))
	}
	return sb.String()
}
