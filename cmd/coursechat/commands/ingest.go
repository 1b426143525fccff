// ABOUTME: CLI command to index course documents
// ABOUTME: Accepts a single document or a folder, with optional index reset
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var ingestClear bool

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <path>",
		Short: "Index course documents",
		Long: `Index course documents into the semantic search index.

The path may be a single course document or a folder. Folder ingestion
skips courses that are already indexed; pass --clear to rebuild the
index from scratch.

Examples:
  coursechat ingest ./docs
  coursechat ingest ./docs --clear
  coursechat ingest ./docs/mcp_course.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().BoolVar(&ingestClear, "clear", false, "Clear the index before ingesting")

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rag, closeDB, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	ctx := cmd.Context()
	if info.IsDir() {
		courses, chunks, err := rag.IngestFolder(ctx, path, ingestClear)
		if err != nil {
			return fmt.Errorf("ingesting folder: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d course(s), %d chunk(s)\n", courses, chunks)
		}
		return nil
	}

	if ingestClear {
		if err := rag.ClearIndex(); err != nil {
			return fmt.Errorf("clearing index: %w", err)
		}
	}
	course, chunks, err := rag.Ingest(ctx, path)
	if err != nil {
		return fmt.Errorf("ingesting document: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Indexed %q: %d chunk(s)\n", course.Title, chunks)
	}
	return nil
}
