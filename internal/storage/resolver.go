// ABOUTME: Fuzzy course name resolution against the catalog collection
// ABOUTME: Maps partial user-supplied names to exact indexed course titles
package storage

import (
	"context"
	"fmt"
)

// CourseNotFoundError indicates a course name filter that matched nothing
// in the catalog above the similarity threshold.
type CourseNotFoundError struct {
	Name string
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("no course found matching '%s'", e.Name)
}

// ResolveCourseName resolves a partial or fuzzy course name to the exact
// title of the best-matching indexed course. Matches below the configured
// threshold are rejected with a *CourseNotFoundError so a typo cannot
// silently select an unrelated course.
func (s *Store) ResolveCourseName(ctx context.Context, name string) (string, error) {
	vector, err := s.embedder.Embed(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to embed course name: %w", err)
	}

	matches, err := s.catalog.QuerySimilar(vector, 1)
	if err != nil {
		return "", fmt.Errorf("catalog query failed: %w", err)
	}
	if len(matches) == 0 || matches[0].Score < s.matchThreshold {
		return "", &CourseNotFoundError{Name: name}
	}

	return matches[0].Title, nil
}
