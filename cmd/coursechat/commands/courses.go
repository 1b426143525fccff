// ABOUTME: CLI command to list indexed courses
// ABOUTME: Shows lesson counts and links in table or JSON format
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/harper/coursechat/internal/models"
	"github.com/spf13/cobra"
)

// NewCoursesCmd creates the courses command
func NewCoursesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List indexed courses",
		Long: `List the courses in the search index with their lesson counts.

Examples:
  coursechat courses
  coursechat courses --format json`,
		Args: cobra.NoArgs,
		RunE: runCourses,
	}

	return cmd
}

type courseSummary struct {
	Title      string `json:"title"`
	Instructor string `json:"instructor,omitempty"`
	Lessons    int    `json:"lessons"`
	Link       string `json:"link,omitempty"`
}

// courseLister is the analytics surface the courses command needs
type courseLister interface {
	CourseTitles() ([]string, error)
	GetCourse(title string) (*models.Course, error)
}

func runCourses(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rag, closeDB, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	summaries, err := collectCourseSummaries(rag)
	if err != nil {
		return err
	}
	return renderCourseSummaries(cmd, summaries)
}

// collectCourseSummaries reads each indexed course from the catalog
func collectCourseSummaries(rag courseLister) ([]courseSummary, error) {
	titles, err := rag.CourseTitles()
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	summaries := make([]courseSummary, 0, len(titles))
	for _, title := range titles {
		course, err := rag.GetCourse(title)
		if err != nil {
			return nil, fmt.Errorf("reading course %q: %w", title, err)
		}
		if course == nil {
			continue
		}
		summaries = append(summaries, courseSummary{
			Title:      course.Title,
			Instructor: course.Instructor,
			Lessons:    len(course.Lessons),
			Link:       course.CourseLink,
		})
	}
	return summaries, nil
}

func renderCourseSummaries(cmd *cobra.Command, summaries []courseSummary) error {
	if len(summaries) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No courses indexed. Run 'coursechat ingest <folder>' first.")
		}
		return nil
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TITLE\tINSTRUCTOR\tLESSONS\n")
	fmt.Fprintf(w, "-----\t----------\t-------\n")
	for _, summary := range summaries {
		instructor := summary.Instructor
		if instructor == "" {
			instructor = "(unknown)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\n", truncate(summary.Title, 50), truncate(instructor, 25), summary.Lessons)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d course(s) indexed\n", len(summaries))
	}
	return nil
}
