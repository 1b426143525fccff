// ABOUTME: Tests for course catalog persistence and similarity search
// ABOUTME: Verifies upsert semantics, lesson storage, and tie-breaking
package sqlite

import (
	"testing"

	"github.com/harper/coursechat/internal/models"
)

func testCourse(title string) *models.Course {
	return &models.Course{
		Title:      title,
		CourseLink: "http://example.com/" + title,
		Instructor: "Test Instructor",
		Lessons: []models.Lesson{
			{Number: 1, Title: "Introduction", Link: "http://example.com/1"},
			{Number: 2, Title: "Basics"},
		},
	}
}

func TestCatalogStore_SaveAndGet(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	course := testCourse("Test Course")
	if err := store.Save(course, []float64{1, 0, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Get("Test Course")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil for saved course")
	}
	if got.Title != "Test Course" {
		t.Errorf("Title = %q, want %q", got.Title, "Test Course")
	}
	if got.Instructor != "Test Instructor" {
		t.Errorf("Instructor = %q, want %q", got.Instructor, "Test Instructor")
	}
	if len(got.Lessons) != 2 {
		t.Fatalf("len(Lessons) = %d, want 2", len(got.Lessons))
	}
	if got.Lessons[0].Link != "http://example.com/1" {
		t.Errorf("Lessons[0].Link = %q, want %q", got.Lessons[0].Link, "http://example.com/1")
	}
	if got.Lessons[1].Link != "" {
		t.Errorf("Lessons[1].Link = %q, want empty", got.Lessons[1].Link)
	}
}

func TestCatalogStore_GetMissing(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	got, err := store.Get("Nonexistent")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Error("Get() should return nil for missing course")
	}
}

func TestCatalogStore_SaveReplacesLessons(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	course := testCourse("Replace Course")
	if err := store.Save(course, []float64{1, 0, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Re-save with a different lesson set
	course.Lessons = []models.Lesson{
		{Number: 1, Title: "New Introduction"},
	}
	if err := store.Save(course, []float64{0, 1, 0}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := store.Get("Replace Course")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Lessons) != 1 {
		t.Fatalf("len(Lessons) = %d, want 1 after replace", len(got.Lessons))
	}
	if got.Lessons[0].Title != "New Introduction" {
		t.Errorf("Lessons[0].Title = %q, want %q", got.Lessons[0].Title, "New Introduction")
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1 (replace should not duplicate)", count)
	}
}

func TestCatalogStore_SaveEmptyTitle(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)
	if err := store.Save(&models.Course{}, []float64{1}); err == nil {
		t.Error("Save() should fail for empty title")
	}
}

func TestCatalogStore_ListTitlesAndCount(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	titles, err := store.ListTitles()
	if err != nil {
		t.Fatalf("ListTitles() error = %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("ListTitles() = %v, want empty", titles)
	}

	for _, title := range []string{"Course A", "Course B", "Course C"} {
		if err := store.Save(testCourse(title), []float64{1, 0, 0}); err != nil {
			t.Fatalf("Save(%q) error = %v", title, err)
		}
	}

	titles, err = store.ListTitles()
	if err != nil {
		t.Fatalf("ListTitles() error = %v", err)
	}
	want := []string{"Course A", "Course B", "Course C"}
	if len(titles) != len(want) {
		t.Fatalf("len(titles) = %d, want %d", len(titles), len(want))
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Errorf("titles[%d] = %q, want %q (insertion order)", i, titles[i], want[i])
		}
	}

	count, err := store.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}

func TestCatalogStore_QuerySimilar(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	// Orthogonal vectors so ranking is unambiguous
	if err := store.Save(testCourse("Far Course"), []float64{0, 1, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(testCourse("Near Course"), []float64{1, 0, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	matches, err := store.QuerySimilar([]float64{1, 0, 0}, 1)
	if err != nil {
		t.Fatalf("QuerySimilar() error = %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].Title != "Near Course" {
		t.Errorf("best match = %q, want %q", matches[0].Title, "Near Course")
	}
	if matches[0].Score < 0.99 {
		t.Errorf("best score = %v, want ~1.0", matches[0].Score)
	}
}

func TestCatalogStore_QuerySimilar_TieBrokenByInsertionOrder(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	// Identical vectors tie on score
	if err := store.Save(testCourse("First Inserted"), []float64{1, 1, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(testCourse("Second Inserted"), []float64{1, 1, 0}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	matches, err := store.QuerySimilar([]float64{1, 1, 0}, 2)
	if err != nil {
		t.Fatalf("QuerySimilar() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len(matches) = %d, want 2", len(matches))
	}
	if matches[0].Title != "First Inserted" {
		t.Errorf("tie winner = %q, want %q", matches[0].Title, "First Inserted")
	}
}

func TestCatalogStore_DeleteAndClear(t *testing.T) {
	db, _ := OpenInMemory()
	defer func() { _ = db.Close() }()

	store := NewCatalogStore(db)

	_ = store.Save(testCourse("Course A"), []float64{1})
	_ = store.Save(testCourse("Course B"), []float64{1})

	if err := store.Delete("Course A"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	count, _ := store.Count()
	if count != 1 {
		t.Errorf("Count() after delete = %d, want 1", count)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	count, _ = store.Count()
	if count != 0 {
		t.Errorf("Count() after clear = %d, want 0", count)
	}
}
