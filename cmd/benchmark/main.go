// ABOUTME: Command-line benchmark runner for retrieval-quality scenarios
// ABOUTME: Executes retrieval benchmarks offline and outputs JSON results

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/coursechat/benchmarks/retrieval"
)

func main() {
	scenarioID := flag.String("scenario", "", "Run specific scenario (unfiltered, course_filter, lesson_filter, cross_course). If empty, runs all scenarios.")
	outputPath := flag.String("output", "benchmark_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("Course Retrieval Benchmarks")
	fmt.Println("========================================")
	fmt.Println()

	runner, err := retrieval.NewBenchmarkRunner(*verbose)
	if err != nil {
		log.Fatalf("Failed to create benchmark runner: %v", err)
	}
	defer runner.Close()

	var results []retrieval.ScenarioResult

	if *scenarioID == "" {
		fmt.Println("Running all retrieval benchmark scenarios...")

		results, err = runner.RunAllScenarios()
		if err != nil {
			log.Fatalf("Benchmark failed: %v", err)
		}
	} else {
		var scenario retrieval.QueryScenario

		switch *scenarioID {
		case "unfiltered":
			scenario = retrieval.GetUnfilteredScenario()
		case "course_filter":
			scenario = retrieval.GetCourseFilterScenario()
		case "lesson_filter":
			scenario = retrieval.GetLessonFilterScenario()
		case "cross_course":
			scenario = retrieval.GetCrossCourseScenario()
		default:
			log.Fatalf("Unknown scenario ID: %s (valid options: unfiltered, course_filter, lesson_filter, cross_course)", *scenarioID)
		}

		fmt.Printf("Running scenario: %s\n", scenario.Name)

		result, err := runner.RunScenario(scenario)
		if err != nil {
			log.Fatalf("Scenario failed: %v", err)
		}

		results = []retrieval.ScenarioResult{result}
	}

	fmt.Println("\n========================================")
	fmt.Println("BENCHMARK SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n%s: %s\n", result.ScenarioID, result.ScenarioName)
		fmt.Printf("  Hit Rate: %.2f\n", result.HitRate)
		fmt.Printf("  Precision: %.2f\n", result.Precision)
		fmt.Printf("  Overall: %.2f\n", result.OverallScore)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Scenarios: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
