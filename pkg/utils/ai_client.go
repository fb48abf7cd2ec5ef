package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIClientInterface is the single capability the planning and search services
// need from an AI provider: one chat completion and one text embedding.
type AIClientInterface interface {
	CompleteChat(ctx context.Context, messages []ChatMessage) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	Close() error
}

// NewAIClient Factory function to create either an OpenAI or Gemini client based on config
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
