// ABOUTME: Metrics for retrieval-quality benchmarks
// ABOUTME: Scores hit rate and precision of search results against expected lesson provenance

package retrieval

import (
	"fmt"

	"github.com/harper/coursechat/internal/models"
)

// MetricsCalculator computes retrieval scores for benchmark scenarios
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateHitRate computes the fraction of expected lessons that appear
// anywhere in the result set (0.0-1.0).
func (m *MetricsCalculator) CalculateHitRate(hits []models.SearchHit, truth GroundTruth) (float64, string) {
	if len(truth.LessonNumbers) == 0 {
		return 1.0, "No expected lessons declared"
	}

	found := 0
	missing := []int{}

	for _, lesson := range truth.LessonNumbers {
		if containsLesson(hits, truth.CourseTitle, lesson) {
			found++
		} else {
			missing = append(missing, lesson)
		}
	}

	rate := float64(found) / float64(len(truth.LessonNumbers))
	if rate == 1.0 {
		return 1.0, "All expected lessons retrieved"
	}

	return rate, fmt.Sprintf("Partial hit rate (%.2f), missing lessons: %v", rate, missing)
}

// CalculatePrecision computes the fraction of results that carry the
// expected provenance (0.0-1.0). An empty result set scores zero.
func (m *MetricsCalculator) CalculatePrecision(hits []models.SearchHit, truth GroundTruth) (float64, string) {
	if len(hits) == 0 {
		return 0.0, "No results returned"
	}

	relevant := 0
	strays := []string{}

	for _, hit := range hits {
		if hitMatches(hit, truth) {
			relevant++
		} else {
			strays = append(strays, describeHit(hit))
		}
	}

	precision := float64(relevant) / float64(len(hits))
	if precision == 1.0 {
		return 1.0, "Every result carries expected provenance"
	}

	return precision, fmt.Sprintf("Partial precision (%.2f), stray results: %v", precision, strays)
}

// EvaluateScenario runs the full evaluation for one scenario
func (m *MetricsCalculator) EvaluateScenario(scenario QueryScenario, hits []models.SearchHit) ScenarioResult {
	hitRate, hitDetail := m.CalculateHitRate(hits, scenario.GroundTruth)
	precision, precisionDetail := m.CalculatePrecision(hits, scenario.GroundTruth)

	overall := (hitRate + precision) / 2.0

	status := "FAIL"
	if hitRate >= 0.9 && precision >= 0.9 && len(hits) >= scenario.GroundTruth.MinHits {
		status = "PASS"
	}

	return ScenarioResult{
		ScenarioID:   scenario.ID,
		ScenarioName: scenario.Name,
		HitRate:      hitRate,
		Precision:    precision,
		OverallScore: overall,
		Status:       status,
		Details: map[string]interface{}{
			"hit_rate_detail":  hitDetail,
			"precision_detail": precisionDetail,
			"result_count":     len(hits),
		},
	}
}

func containsLesson(hits []models.SearchHit, courseTitle string, lesson int) bool {
	for _, hit := range hits {
		if hit.CourseTitle == courseTitle && hit.LessonNumber != nil && *hit.LessonNumber == lesson {
			return true
		}
	}
	return false
}

func hitMatches(hit models.SearchHit, truth GroundTruth) bool {
	if hit.CourseTitle != truth.CourseTitle {
		return false
	}
	if hit.LessonNumber == nil {
		return false
	}
	for _, lesson := range truth.LessonNumbers {
		if *hit.LessonNumber == lesson {
			return true
		}
	}
	return false
}

func describeHit(hit models.SearchHit) string {
	if hit.LessonNumber == nil {
		return fmt.Sprintf("%s (no lesson)", hit.CourseTitle)
	}
	return fmt.Sprintf("%s lesson %d", hit.CourseTitle, *hit.LessonNumber)
}
