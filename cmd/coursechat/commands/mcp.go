// ABOUTME: MCP command starts the Model Context Protocol server on stdio
// ABOUTME: Exposes course search and outline tools to LLM agents
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/coursechat/internal/llm"
	"github.com/harper/coursechat/internal/mcp"
	"github.com/harper/coursechat/internal/storage"
	"github.com/harper/coursechat/internal/storage/sqlite"
	"github.com/harper/coursechat/internal/tools"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs coursechat as an MCP (Model Context Protocol) server, exposing
course content search and course outlines over stdio. The connected
agent brings its own reasoning model; this process only serves the
index.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  coursechat mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "coursechat": {
  #       "command": "coursechat",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	embedder, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("creating OpenAI client: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening index: %w", err)
	}

	store := storage.NewStore(db, embedder, cfg.MaxResults, cfg.CourseMatchThreshold)
	manager := tools.NewManager()
	manager.Register(tools.NewSearchTool(store))
	manager.Register(tools.NewOutlineTool(store))

	server := mcpserver.NewMCPServer(
		"Course Materials Search",
		"0.1.0",
	)
	mcp.RegisterTools(server, manager)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Course materials MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down...")
		}
		if err := db.Close(); err != nil {
			log.Printf("Warning: Error closing index: %v", err)
		}
	case err := <-serverErr:
		db.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
