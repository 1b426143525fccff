// ABOUTME: OpenAI client for embeddings and tool-calling chat completions
// ABOUTME: Retries transient failures with exponential backoff and jitter
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/coursechat/internal/models"
	"github.com/harper/coursechat/internal/util"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = string(openai.SmallEmbedding3)

	// maxAnswerTokens bounds completion length for answers
	maxAnswerTokens = 800
)

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey         string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		Timeout:        30 * time.Second,
		MaxRetries:     3,
		RetryDelay:     time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic. It serves both
// the embedding side of the index and the chat side of the orchestrator.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	embeddingModel openai.EmbeddingModel
	timeout        time.Duration
	maxRetries     int
	retryDelay     time.Duration
}

// embeddingModelFor maps the configured model name onto the API type
func embeddingModelFor(name string) openai.EmbeddingModel {
	if name == "" {
		return openai.SmallEmbedding3
	}
	return openai.EmbeddingModel(name)
}

// NewOpenAIClient creates a client with the default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &OpenAIClient{
		client:         openai.NewClient(config.APIKey),
		chatModel:      config.ChatModel,
		embeddingModel: embeddingModelFor(config.EmbeddingModel),
		timeout:        timeout,
		maxRetries:     config.MaxRetries,
		retryDelay:     config.RetryDelay,
	}, nil
}

// Embed generates an embedding vector for one text
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch generates embedding vectors for a batch of texts in one request
func (c *OpenAIClient) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithContext(ctx, util.CalculateBackoff(c.retryDelay, attempt)); err != nil {
				return nil, err
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateEmbeddings(reqCtx, openai.EmbeddingRequestStrings{
			Input: texts,
			Model: c.embeddingModel,
		})
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Data) != len(texts) {
			lastErr = fmt.Errorf("attempt %d: got %d embeddings for %d inputs", attempt+1, len(resp.Data), len(texts))
			continue
		}

		vectors := make([][]float64, len(resp.Data))
		for _, data := range resp.Data {
			vector := make([]float64, len(data.Embedding))
			for j, v := range data.Embedding {
				vector[j] = float64(v)
			}
			vectors[data.Index] = vector
		}
		return vectors, nil
	}

	return nil, fmt.Errorf("failed to generate embeddings after %d attempts: %w", c.maxRetries+1, lastErr)
}

// Complete sends a chat completion request. With tools attached, the model
// may answer directly or request tool calls; the result distinguishes the two.
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt string, messages []models.ChatMessage, tools []models.ToolDefinition) (*models.Completion, error) {
	request := openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    toOpenAIMessages(systemPrompt, messages),
		Temperature: 0,
		MaxTokens:   maxAnswerTokens,
	}
	if len(tools) > 0 {
		request.Tools = toOpenAITools(tools)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepWithContext(ctx, util.CalculateBackoff(c.retryDelay, attempt)); err != nil {
				return nil, err
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err := c.client.CreateChatCompletion(reqCtx, request)
		cancel()

		if err != nil {
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		return fromOpenAIResponse(resp.Choices[0].Message), nil
	}

	return nil, fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

// toOpenAIMessages converts internal messages to the wire format, prepending
// the system prompt
func toOpenAIMessages(systemPrompt string, messages []models.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	out = append(out, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})

	for _, msg := range messages {
		converted := openai.ChatCompletionMessage{Content: msg.Content}
		switch msg.Role {
		case models.RoleAssistant:
			converted.Role = openai.ChatMessageRoleAssistant
			for _, call := range msg.ToolCalls {
				converted.ToolCalls = append(converted.ToolCalls, openai.ToolCall{
					ID:   call.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      call.Name,
						Arguments: string(call.Arguments),
					},
				})
			}
		case models.RoleTool:
			converted.Role = openai.ChatMessageRoleTool
			converted.ToolCallID = msg.ToolCallID
		default:
			converted.Role = openai.ChatMessageRoleUser
		}
		out = append(out, converted)
	}
	return out
}

// toOpenAITools converts tool definitions to the wire format
func toOpenAITools(tools []models.ToolDefinition) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.InputSchema,
			},
		})
	}
	return out
}

// fromOpenAIResponse converts a response message into a tagged completion
func fromOpenAIResponse(msg openai.ChatCompletionMessage) *models.Completion {
	completion := &models.Completion{Text: msg.Content}
	for _, call := range msg.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, models.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: json.RawMessage(call.Function.Arguments),
		})
	}
	return completion
}

// sleepWithContext waits for the backoff delay unless the context ends first
func sleepWithContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
