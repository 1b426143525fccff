// ABOUTME: Shared construction and formatting helpers for CLI commands
// ABOUTME: Builds the configured store and RAG pipeline from the environment
package commands

import (
	"fmt"

	"github.com/harper/coursechat/internal/config"
	"github.com/harper/coursechat/internal/core"
	"github.com/harper/coursechat/internal/llm"
	"github.com/harper/coursechat/internal/storage"
	"github.com/harper/coursechat/internal/storage/sqlite"
	"github.com/joho/godotenv"
)

// loadConfig loads .env plus environment configuration
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// openPipeline builds the store and RAG facade from configuration. The
// returned close function releases the underlying database.
func openPipeline(cfg *config.Config) (*core.RAG, func() error, error) {
	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating OpenAI client: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening index: %w", err)
	}

	store := storage.NewStore(db, client, cfg.MaxResults, cfg.CourseMatchThreshold)
	rag := core.NewRAG(store, client, cfg.ChunkSize, cfg.ChunkOverlap, cfg.MaxHistory)
	return rag, db.Close, nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
