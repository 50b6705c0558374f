package service

import (
	"context"
	"fmt"

	"github.com/nutrimind/backend/config"
)

// Message represents a message in a chat-completion conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionClient is the single outbound integration point with the model
// provider. Implementations must never return empty text without an error.
type CompletionClient interface {
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)
}

// NewCompletionClient selects a provider implementation from configuration
func NewCompletionClient(ctx context.Context, cfg *config.Config) (CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderASI:
		return NewASIClient(cfg)
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider: %q", cfg.Provider)
	}
}

// UserMessage wraps a prompt as a single user turn
func UserMessage(prompt string) []Message {
	return []Message{{Role: RoleUser, Content: prompt}}
}
