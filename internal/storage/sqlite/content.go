// ABOUTME: Course content collection backed by SQLite
// ABOUTME: Stores chunk embeddings with hard course/lesson filtering on search
package sqlite

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/harper/coursechat/internal/models"
)

// ContentStore handles chunk persistence and filtered similarity search
type ContentStore struct {
	db *DB
}

// NewContentStore creates a new ContentStore
func NewContentStore(db *DB) *ContentStore {
	return &ContentStore{db: db}
}

// AddChunks stores chunks with their embedding vectors. The two slices
// must be the same length; chunk IDs are derived from course title and
// index so re-adding a course's chunks overwrites the previous set.
func (s *ContentStore) AddChunks(chunks []models.CourseChunk, vectors [][]float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.AddChunksTx(tx, chunks, vectors); err != nil {
		return err
	}

	return tx.Commit()
}

// AddChunksTx stores chunks inside an existing transaction
func (s *ContentStore) AddChunksTx(tx *sql.Tx, chunks []models.CourseChunk, vectors [][]float64) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunks and vectors length mismatch: %d != %d", len(chunks), len(vectors))
	}

	for i, chunk := range chunks {
		var lessonNumber sql.NullInt64
		if chunk.LessonNumber != nil {
			lessonNumber = sql.NullInt64{Int64: int64(*chunk.LessonNumber), Valid: true}
		}

		_, err := tx.Exec(`
			INSERT INTO chunks (id, course_title, lesson_number, chunk_index, content, vector)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				lesson_number = excluded.lesson_number,
				content = excluded.content,
				vector = excluded.vector
		`, chunk.ID(), chunk.CourseTitle, lessonNumber, chunk.ChunkIndex, chunk.Content, vectorToBlob(vectors[i]))
		if err != nil {
			return fmt.Errorf("failed to save chunk %s: %w", chunk.ID(), err)
		}
	}

	return nil
}

// DeleteByCourse removes all chunks belonging to a course
func (s *ContentStore) DeleteByCourse(courseTitle string) error {
	_, err := s.db.Exec(`DELETE FROM chunks WHERE course_title = ?`, courseTitle)
	return err
}

// DeleteByCourseTx removes a course's chunks inside an existing transaction
func (s *ContentStore) DeleteByCourseTx(tx *sql.Tx, courseTitle string) error {
	_, err := tx.Exec(`DELETE FROM chunks WHERE course_title = ?`, courseTitle)
	return err
}

// Count returns the number of stored chunks
func (s *ContentStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM chunks`).Scan(&count)
	return count, err
}

// QuerySimilar performs cosine similarity search over the content
// collection. Filters are hard constraints: rows outside the given
// course title or lesson number never appear regardless of score. Ties
// are broken by insertion order.
func (s *ContentStore) QuerySimilar(queryVector []float64, maxResults int, courseTitle string, lessonNumber *int) ([]models.SearchHit, error) {
	query := `SELECT course_title, lesson_number, chunk_index, content, vector FROM chunks`
	var (
		conds []string
		args  []interface{}
	)
	if courseTitle != "" {
		conds = append(conds, "course_title = ?")
		args = append(args, courseTitle)
	}
	if lessonNumber != nil {
		conds = append(conds, "lesson_number = ?")
		args = append(args, *lessonNumber)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY rowid ASC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var hits []models.SearchHit
	for rows.Next() {
		var (
			hit    models.SearchHit
			lesson sql.NullInt64
			blob   []byte
		)
		if err := rows.Scan(&hit.CourseTitle, &lesson, &hit.ChunkIndex, &hit.Content, &blob); err != nil {
			return nil, err
		}
		if lesson.Valid {
			n := int(lesson.Int64)
			hit.LessonNumber = &n
		}
		hit.Score = CosineSimilarity(queryVector, blobToVector(blob))
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	return hits, nil
}

// Clear removes all chunks
func (s *ContentStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM chunks`)
	return err
}
