// ABOUTME: Main entry point for the course materials MCP server on stdio
// ABOUTME: Initializes the index, tool registry, and MCP server
package main

import (
	"log"

	"github.com/harper/coursechat/internal/config"
	"github.com/harper/coursechat/internal/llm"
	"github.com/harper/coursechat/internal/mcp"
	"github.com/harper/coursechat/internal/storage"
	"github.com/harper/coursechat/internal/storage/sqlite"
	"github.com/harper/coursechat/internal/tools"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
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
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open index: %v", err)
	}
	defer db.Close()

	store := storage.NewStore(db, embedder, cfg.MaxResults, cfg.CourseMatchThreshold)

	manager := tools.NewManager()
	manager.Register(tools.NewSearchTool(store))
	manager.Register(tools.NewOutlineTool(store))

	server := mcpserver.NewMCPServer(
		"Course Materials Search",
		"0.1.0",
	)
	mcp.RegisterTools(server, manager)

	log.Println("Course materials MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
