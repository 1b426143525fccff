// ABOUTME: Centralized configuration for the course materials RAG system
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration for the coursechat system
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Storage settings
	DBPath string

	// Chunking settings
	ChunkSize    int
	ChunkOverlap int

	// Retrieval settings
	MaxResults           int
	CourseMatchThreshold float64

	// Session settings
	MaxHistory int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:            os.Getenv("OPENAI_API_KEY"),
		ChatModel:            getEnv("COURSECHAT_CHAT_MODEL", "gpt-4o-mini"),
		EmbeddingModel:       getEnv("COURSECHAT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:              getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:           getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:           getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DBPath:               getEnv("COURSECHAT_DB", defaultDBPath()),
		ChunkSize:            getEnvInt("CHUNK_SIZE", 800),
		ChunkOverlap:         getEnvInt("CHUNK_OVERLAP", 100),
		MaxResults:           getEnvInt("MAX_RESULTS", 5),
		CourseMatchThreshold: getEnvFloat("COURSE_MATCH_THRESHOLD", 0.6),
		MaxHistory:           getEnvInt("MAX_HISTORY", 2),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("CHUNK_OVERLAP must be in [0, CHUNK_SIZE), got %d", c.ChunkOverlap)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("MAX_RESULTS must be positive, got %d", c.MaxResults)
	}
	if c.CourseMatchThreshold < 0 || c.CourseMatchThreshold > 1 {
		return fmt.Errorf("COURSE_MATCH_THRESHOLD must be 0-1, got %f", c.CourseMatchThreshold)
	}
	if c.MaxHistory < 0 {
		return fmt.Errorf("MAX_HISTORY must be non-negative, got %d", c.MaxHistory)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// defaultDBPath returns the XDG-compliant default database location
func defaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".local", "share", "coursechat", "coursechat.db")
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataHome, "coursechat", "coursechat.db")
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
