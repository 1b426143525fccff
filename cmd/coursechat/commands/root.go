// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Entry point for ingest, ask, courses, mcp, and version commands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████╗ ██████╗ ██╗   ██╗██████╗ ███████╗███████╗ ██████╗██╗  ██╗ █████╗ ████████╗
██╔════╝██╔═══██╗██║   ██║██╔══██╗██╔════╝██╔════╝██╔════╝██║  ██║██╔══██╗╚══██╔══╝
██║     ██║   ██║██║   ██║██████╔╝███████╗█████╗  ██║     ███████║███████║   ██║
██║     ██║   ██║██║   ██║██╔══██╗╚════██║██╔══╝  ██║     ██╔══██║██╔══██║   ██║
╚██████╗╚██████╔╝╚██████╔╝██║  ██║███████║███████╗╚██████╗██║  ██║██║  ██║   ██║
 ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coursechat",
		Short: "Ask questions about your course materials",
		Long: banner + `
Coursechat indexes course documents into a semantic search index and
answers questions about them with a tool-calling LLM, citing the
courses and lessons each answer draws on.

Get started:
  coursechat ingest ./docs     index a folder of course documents
  coursechat ask "question"    ask about the indexed material
  coursechat courses           list what is indexed`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewIngestCmd(),
		NewAskCmd(),
		NewCoursesCmd(),
		NewMCPCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
