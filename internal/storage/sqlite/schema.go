// ABOUTME: SQLite database schema for the dual-collection course index
// ABOUTME: Courses form the catalog collection, chunks the content collection
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Course catalog (one row per course, with its catalog embedding)
CREATE TABLE IF NOT EXISTS courses (
    title TEXT PRIMARY KEY,
    course_link TEXT,
    instructor TEXT,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Lessons belonging to a course
CREATE TABLE IF NOT EXISTS lessons (
    course_title TEXT NOT NULL REFERENCES courses(title) ON DELETE CASCADE,
    lesson_number INTEGER NOT NULL,
    lesson_title TEXT NOT NULL,
    lesson_link TEXT,
    PRIMARY KEY (course_title, lesson_number)
);

-- Course content (one row per chunk, with its content embedding)
CREATE TABLE IF NOT EXISTS chunks (
    id TEXT PRIMARY KEY,
    course_title TEXT NOT NULL REFERENCES courses(title) ON DELETE CASCADE,
    lesson_number INTEGER,
    chunk_index INTEGER NOT NULL,
    content TEXT NOT NULL,
    vector BLOB NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for filtered content search
CREATE INDEX IF NOT EXISTS idx_chunks_course ON chunks(course_title);
CREATE INDEX IF NOT EXISTS idx_chunks_lesson ON chunks(course_title, lesson_number);
CREATE INDEX IF NOT EXISTS idx_lessons_course ON lessons(course_title);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
