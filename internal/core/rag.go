// ABOUTME: RAG wires parsing, indexing, tools, and the generator together
// ABOUTME: Entry points for ingestion and query used by the CLI and MCP server
package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/storage"
	"github.com/harper/coursechat/internal/tools"
)

// RAG is the retrieval-augmented generation facade over the course index
type RAG struct {
	store     *storage.Store
	parser    *DocumentParser
	generator *Generator
	sessions  *SessionStore
	tools     *tools.Manager
}

// NewRAG assembles the pipeline. chunkSize/chunkOverlap configure the
// chunker, maxHistory the per-session retention cap.
func NewRAG(store *storage.Store, client ChatClient, chunkSize, chunkOverlap, maxHistory int) *RAG {
	manager := tools.NewManager()
	manager.Register(tools.NewSearchTool(store))
	manager.Register(tools.NewOutlineTool(store))

	return &RAG{
		store:     store,
		parser:    NewDocumentParser(NewChunker(chunkSize, chunkOverlap)),
		generator: NewGenerator(client),
		sessions:  NewSessionStore(maxHistory),
		tools:     manager,
	}
}

// Ingest parses and indexes one course document, replacing any previously
// indexed course with the same title. Returns the course and its chunk count.
func (r *RAG) Ingest(ctx context.Context, path string) (*models.Course, int, error) {
	course, chunks, err := r.parser.ParseFile(path)
	if err != nil {
		return nil, 0, err
	}
	if err := r.store.AddCourse(ctx, course, chunks); err != nil {
		return nil, 0, err
	}
	return course, len(chunks), nil
}

// IngestFolder indexes every course document in a directory. Courses whose
// titles are already indexed are skipped; per-file failures are logged and
// do not abort the rest of the folder. Returns courses and chunks added.
func (r *RAG) IngestFolder(ctx context.Context, dir string, clear bool) (int, int, error) {
	if clear {
		if err := r.store.Clear(); err != nil {
			return 0, 0, fmt.Errorf("failed to clear index: %w", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read folder: %w", err)
	}

	existing, err := r.store.CourseTitles()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to list indexed courses: %w", err)
	}
	indexed := make(map[string]bool, len(existing))
	for _, title := range existing {
		indexed[title] = true
	}

	coursesAdded, chunksAdded := 0, 0
	for _, entry := range entries {
		if entry.IsDir() || !isCourseDocument(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		course, chunks, err := r.parser.ParseFile(path)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			continue
		}
		if indexed[course.Title] {
			continue
		}
		if err := r.store.AddCourse(ctx, course, chunks); err != nil {
			log.Printf("Warning: failed to index %s: %v", path, err)
			continue
		}
		indexed[course.Title] = true
		coursesAdded++
		chunksAdded += len(chunks)
	}

	return coursesAdded, chunksAdded, nil
}

// Query answers a question, creating a session when sessionID is empty.
// Returns the answer, the citations of the content it drew on, and the
// session id the exchange was recorded under.
func (r *RAG) Query(ctx context.Context, text, sessionID string) (string, []models.SourceCitation, string, error) {
	if sessionID == "" {
		sessionID = r.sessions.CreateSession()
	}
	history := r.sessions.FormatHistory(sessionID)

	answer, citations, err := r.generator.GenerateResponse(ctx, text, history, r.tools)
	if err != nil {
		return "", nil, sessionID, err
	}

	r.sessions.Append(sessionID, text, answer)
	return answer, citations, sessionID, nil
}

// CourseCount returns the number of indexed courses
func (r *RAG) CourseCount() (int, error) {
	return r.store.CourseCount()
}

// CourseTitles returns the indexed course titles in insertion order
func (r *RAG) CourseTitles() ([]string, error) {
	return r.store.CourseTitles()
}

// GetCourse returns an indexed course with its lessons, or nil
func (r *RAG) GetCourse(title string) (*models.Course, error) {
	return r.store.GetCourse(title)
}

// ClearIndex removes all indexed courses and chunks
func (r *RAG) ClearIndex() error {
	return r.store.Clear()
}

// isCourseDocument reports whether a file name looks like a course document
func isCourseDocument(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md":
		return true
	}
	return false
}
