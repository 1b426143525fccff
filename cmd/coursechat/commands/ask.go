// ABOUTME: CLI command to ask a question about indexed course materials
// ABOUTME: Prints the answer with its source citations
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question about the indexed courses",
		Long: `Ask a question about the indexed course materials.

The LLM decides whether to search the index before answering. Answers
that draw on course content list the courses and lessons they came
from.

Examples:
  coursechat ask "What is covered in lesson 1 of MCP?"
  coursechat ask --format json "Summarize the retrieval course"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rag, closeDB, err := openPipeline(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	answer, citations, sessionID, err := rag.Query(cmd.Context(), args[0], "")
	if err != nil {
		return fmt.Errorf("answering query: %w", err)
	}

	if outputFormat == "json" {
		payload := map[string]interface{}{
			"answer":     answer,
			"sources":    citations,
			"session_id": sessionID,
		}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)

	if len(citations) > 0 && !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "\nSources:")
		for _, citation := range citations {
			line := "  " + citation.Label()
			if citation.Link != "" {
				line += " <" + citation.Link + ">"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
	}
	return nil
}
