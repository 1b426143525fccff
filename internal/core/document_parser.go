// ABOUTME: Parses course documents into Course metadata and lesson-tagged chunks
// ABOUTME: Expects a header block followed by "Lesson N: Title" sections
package core

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/harper/coursechat/internal/models"
)

// ErrNoCourseTitle indicates a document without a parseable course title
var ErrNoCourseTitle = errors.New("document has no course title")

var lessonMarkerRe = regexp.MustCompile(`^Lesson\s+(\d+):\s*(.*)$`)

// DocumentParser turns raw course documents into a Course and its chunks.
// Documents start with header lines (Course Title, Course Link, Instructor,
// in any order) followed by lesson sections introduced by "Lesson N: Title"
// markers, each optionally followed by a "Lesson Link:" line. Text before
// the first lesson marker that is not a header becomes lesson-less chunks.
type DocumentParser struct {
	chunker *Chunker
}

// NewDocumentParser creates a parser using the given chunker
func NewDocumentParser(chunker *Chunker) *DocumentParser {
	return &DocumentParser{chunker: chunker}
}

// ParseFile reads and parses a course document from disk
func (p *DocumentParser) ParseFile(path string) (*models.Course, []models.CourseChunk, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}
	course, chunks, err := p.Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return course, chunks, nil
}

// Parse parses a course document. A missing course title aborts parsing
// with ErrNoCourseTitle and no partial results.
func (p *DocumentParser) Parse(content string) (*models.Course, []models.CourseChunk, error) {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	course := &models.Course{}
	var preamble []string
	bodyStart := len(lines)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if lessonMarkerRe.MatchString(trimmed) {
			bodyStart = i
			break
		}
		switch {
		case strings.HasPrefix(trimmed, "Course Title:"):
			course.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "Course Title:"))
		case strings.HasPrefix(trimmed, "Course Link:"):
			course.CourseLink = strings.TrimSpace(strings.TrimPrefix(trimmed, "Course Link:"))
		case strings.HasPrefix(trimmed, "Course Instructor:"):
			course.Instructor = strings.TrimSpace(strings.TrimPrefix(trimmed, "Course Instructor:"))
		case strings.HasPrefix(trimmed, "Instructor:"):
			course.Instructor = strings.TrimSpace(strings.TrimPrefix(trimmed, "Instructor:"))
		default:
			if trimmed != "" {
				preamble = append(preamble, trimmed)
			}
		}
	}

	if course.Title == "" {
		return nil, nil, ErrNoCourseTitle
	}

	var chunks []models.CourseChunk
	chunkIndex := 0

	appendChunks := func(text string, lessonNumber *int) {
		for _, piece := range p.chunker.Split(text) {
			chunks = append(chunks, models.CourseChunk{
				Content:      piece,
				CourseTitle:  course.Title,
				LessonNumber: lessonNumber,
				ChunkIndex:   chunkIndex,
			})
			chunkIndex++
		}
	}

	// Introductory text before the first lesson is indexed without a lesson tag
	if len(preamble) > 0 {
		appendChunks(strings.Join(preamble, "\n"), nil)
	}

	var currentLesson *models.Lesson
	var lessonText []string

	flushLesson := func() {
		if currentLesson == nil {
			return
		}
		course.Lessons = append(course.Lessons, *currentLesson)
		number := currentLesson.Number
		appendChunks(strings.Join(lessonText, "\n"), &number)
		currentLesson = nil
		lessonText = nil
	}

	for i := bodyStart; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if m := lessonMarkerRe.FindStringSubmatch(trimmed); m != nil {
			flushLesson()
			number, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, nil, fmt.Errorf("invalid lesson number in %q: %w", trimmed, err)
			}
			currentLesson = &models.Lesson{Number: number, Title: strings.TrimSpace(m[2])}
			continue
		}

		if currentLesson != nil && strings.HasPrefix(trimmed, "Lesson Link:") && currentLesson.Link == "" && len(lessonText) == 0 {
			currentLesson.Link = strings.TrimSpace(strings.TrimPrefix(trimmed, "Lesson Link:"))
			continue
		}

		if currentLesson != nil && trimmed != "" {
			lessonText = append(lessonText, trimmed)
		}
	}
	flushLesson()

	return course, chunks, nil
}
