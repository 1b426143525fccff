// ABOUTME: Scenario data for retrieval-quality benchmarks
// ABOUTME: Defines fixture course documents, queries, and expected lesson provenance

package retrieval

// QueryScenario represents a single retrieval benchmark case
type QueryScenario struct {
	ID           string
	Name         string
	Description  string
	Query        string
	CourseFilter string // Optional course name filter (may be a partial match)
	LessonFilter *int   // Optional lesson number filter
	GroundTruth  GroundTruth
}

// GroundTruth defines the provenance a correct retrieval must come from
type GroundTruth struct {
	CourseTitle   string // Every relevant hit belongs to this course
	LessonNumbers []int  // Relevant hits come from these lessons
	MinHits       int    // Minimum number of results expected
}

// ScenarioResult represents the outcome of a benchmark scenario
type ScenarioResult struct {
	ScenarioID   string
	ScenarioName string
	HitRate      float64
	Precision    float64
	OverallScore float64
	Status       string // "PASS" or "FAIL"
	Details      map[string]interface{}
	ErrorMessage string
}

// FixtureDocuments returns the synthetic course documents every scenario
// is evaluated against. The lesson vocabularies are deliberately disjoint
// so that a correct embedding ranks the right lesson first.
func FixtureDocuments() []string {
	return []string{
		`Course Title: Distributed Consensus Fundamentals
Course Link: https://example.com/consensus
Course Instructor: Ada Chen

Lesson 0: Introduction
Lesson Link: https://example.com/consensus/0
Consensus protocols let a cluster of machines agree on a single value. This lesson surveys the landscape and explains why agreement is hard when machines crash.

Lesson 1: Raft Leader Election
Lesson Link: https://example.com/consensus/1
Raft elects a leader using randomized election timeouts. A follower that hears no heartbeat becomes a candidate, increments its term, and requests votes from its peers. A candidate that gathers a majority of votes becomes the leader.

Lesson 2: Log Replication
Lesson Link: https://example.com/consensus/2
The leader appends client commands to its log and replicates entries to followers. An entry is committed once a majority of the cluster has stored it durably.
`,
		`Course Title: Practical Vector Databases
Course Link: https://example.com/vectors
Course Instructor: Omar Diaz

Lesson 0: Embedding Basics
Lesson Link: https://example.com/vectors/0
An embedding maps text to a point in a high dimensional space. Similar passages land near each other, which makes nearest neighbor lookup useful for retrieval.

Lesson 1: Cosine Similarity
Lesson Link: https://example.com/vectors/1
Cosine similarity compares the angle between two vectors and ignores their magnitude. It is the standard ranking function for normalized embeddings.

Lesson 2: Index Structures
Lesson Link: https://example.com/vectors/2
Approximate nearest neighbor indexes trade exactness for speed. Graph based indexes like HNSW navigate a layered proximity graph to find close vectors quickly.
`,
	}
}

// GetUnfilteredScenario exercises retrieval with no course or lesson filter.
func GetUnfilteredScenario() QueryScenario {
	return QueryScenario{
		ID:          "unfiltered",
		Name:        "Unfiltered semantic query",
		Description: "A query about leader election must surface the Raft lesson without any filters",
		Query:       "How does a candidate win a leader election with votes?",
		GroundTruth: GroundTruth{
			CourseTitle:   "Distributed Consensus Fundamentals",
			LessonNumbers: []int{1},
			MinHits:       1,
		},
	}
}

// GetCourseFilterScenario exercises fuzzy course name resolution plus
// filtered search.
func GetCourseFilterScenario() QueryScenario {
	return QueryScenario{
		ID:           "course_filter",
		Name:         "Fuzzy course filter",
		Description:  "A partial course name must resolve to the vector course and restrict results to it",
		Query:        "How does cosine similarity rank vectors?",
		CourseFilter: "Vector Databases",
		GroundTruth: GroundTruth{
			CourseTitle:   "Practical Vector Databases",
			LessonNumbers: []int{1},
			MinHits:       1,
		},
	}
}

// GetLessonFilterScenario exercises the lesson number filter.
func GetLessonFilterScenario() QueryScenario {
	lesson := 2
	return QueryScenario{
		ID:           "lesson_filter",
		Name:         "Lesson number filter",
		Description:  "A lesson filter must exclude every chunk from other lessons",
		Query:        "How are log entries committed?",
		CourseFilter: "Consensus",
		LessonFilter: &lesson,
		GroundTruth: GroundTruth{
			CourseTitle:   "Distributed Consensus Fundamentals",
			LessonNumbers: []int{2},
			MinHits:       1,
		},
	}
}

// GetCrossCourseScenario checks that a query about one domain does not
// pull content from the other course.
func GetCrossCourseScenario() QueryScenario {
	return QueryScenario{
		ID:          "cross_course",
		Name:        "Cross-course isolation",
		Description: "A query about approximate nearest neighbor indexes must not surface consensus content",
		Query:       "What does an HNSW proximity graph index do?",
		GroundTruth: GroundTruth{
			CourseTitle:   "Practical Vector Databases",
			LessonNumbers: []int{2},
			MinHits:       1,
		},
	}
}

// GetAllScenarios returns all retrieval benchmark scenarios
func GetAllScenarios() []QueryScenario {
	return []QueryScenario{
		GetUnfilteredScenario(),
		GetCourseFilterScenario(),
		GetLessonFilterScenario(),
		GetCrossCourseScenario(),
	}
}
