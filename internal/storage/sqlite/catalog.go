// ABOUTME: Course catalog collection backed by SQLite
// ABOUTME: Stores course metadata with embeddings for fuzzy title resolution
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/harper/coursechat/internal/models"
)

// CatalogStore handles course metadata persistence
type CatalogStore struct {
	db *DB
}

// NewCatalogStore creates a new CatalogStore
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Save upserts a course and its lessons along with the catalog embedding.
// Saving an existing title replaces its metadata and lessons.
func (s *CatalogStore) Save(course *models.Course, vector []float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.SaveTx(tx, course, vector); err != nil {
		return err
	}

	return tx.Commit()
}

// SaveTx upserts a course inside an existing transaction, so callers can
// combine the catalog write with content writes atomically.
func (s *CatalogStore) SaveTx(tx *sql.Tx, course *models.Course, vector []float64) error {
	if course.Title == "" {
		return fmt.Errorf("course title is required")
	}

	_, err := tx.Exec(`
		INSERT INTO courses (title, course_link, instructor, vector)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET
			course_link = excluded.course_link,
			instructor = excluded.instructor,
			vector = excluded.vector
	`, course.Title, nullString(course.CourseLink), nullString(course.Instructor), vectorToBlob(vector))
	if err != nil {
		return fmt.Errorf("failed to save course: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM lessons WHERE course_title = ?`, course.Title); err != nil {
		return fmt.Errorf("failed to clear lessons: %w", err)
	}

	for _, lesson := range course.Lessons {
		_, err = tx.Exec(`
			INSERT INTO lessons (course_title, lesson_number, lesson_title, lesson_link)
			VALUES (?, ?, ?, ?)
		`, course.Title, lesson.Number, lesson.Title, nullString(lesson.Link))
		if err != nil {
			return fmt.Errorf("failed to save lesson %d: %w", lesson.Number, err)
		}
	}

	return nil
}

// Get retrieves a course with its lessons by exact title. Returns nil if
// the course is not indexed.
func (s *CatalogStore) Get(title string) (*models.Course, error) {
	var (
		course     models.Course
		courseLink sql.NullString
		instructor sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT title, course_link, instructor FROM courses WHERE title = ?
	`, title).Scan(&course.Title, &courseLink, &instructor)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	course.CourseLink = courseLink.String
	course.Instructor = instructor.String

	rows, err := s.db.Query(`
		SELECT lesson_number, lesson_title, lesson_link
		FROM lessons
		WHERE course_title = ?
		ORDER BY lesson_number ASC
	`, title)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			lesson models.Lesson
			link   sql.NullString
		)
		if err := rows.Scan(&lesson.Number, &lesson.Title, &link); err != nil {
			return nil, err
		}
		lesson.Link = link.String
		course.Lessons = append(course.Lessons, lesson)
	}

	return &course, rows.Err()
}

// Delete removes a course; lessons and chunks cascade
func (s *CatalogStore) Delete(title string) error {
	_, err := s.db.Exec(`DELETE FROM courses WHERE title = ?`, title)
	return err
}

// ListTitles returns all indexed course titles in insertion order
func (s *CatalogStore) ListTitles() ([]string, error) {
	rows, err := s.db.Query(`SELECT title FROM courses ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

// Count returns the number of indexed courses
func (s *CatalogStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}

// QuerySimilar performs cosine similarity search over the catalog.
// Ties are broken by insertion order.
func (s *CatalogStore) QuerySimilar(queryVector []float64, maxResults int) ([]models.CourseMatch, error) {
	rows, err := s.db.Query(`SELECT title, vector FROM courses ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var matches []models.CourseMatch
	for rows.Next() {
		var (
			title string
			blob  []byte
		)
		if err := rows.Scan(&title, &blob); err != nil {
			return nil, err
		}
		matches = append(matches, models.CourseMatch{
			Title: title,
			Score: CosineSimilarity(queryVector, blobToVector(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	return matches, nil
}

// Clear removes all courses (and cascaded lessons and chunks)
func (s *CatalogStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM courses`)
	return err
}

// nullString converts "" to a SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
