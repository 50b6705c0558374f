package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nutrimind/backend/config"
)

// GeminiClient is the SDK-based completion client for the Google Gemini API
type GeminiClient struct {
	client    *genai.Client
	modelName string
	maxTokens int
}

// NewGeminiClient creates a new Gemini API client
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	if cfg.GeminiKey == "" {
		return nil, &AuthError{Reason: "GEMINI_API_KEY or GEMINI_API_KEY_FILE must be set"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: cfg.GeminiModel,
		maxTokens: cfg.MaxTokens,
	}, nil
}

// Complete sends the conversation to the Gemini model and returns the
// generated text. Gemini takes a flat prompt, so prior turns are folded into
// a labelled transcript.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	model := c.client.GenerativeModel(c.modelName)
	model.SetTemperature(float32(temperature))
	model.SetMaxOutputTokens(int32(c.maxTokens))

	resp, err := model.GenerateContent(ctx, genai.Text(flattenMessages(messages)))
	if err != nil {
		return "", &ProviderError{Message: fmt.Sprintf("failed to generate content: %v", err)}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", &ProviderError{Message: "no content generated"}
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", &ProviderError{Message: "generated content is not text"}
	}

	return string(text), nil
}

// Close closes the underlying Gemini client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func flattenMessages(messages []Message) string {
	if len(messages) == 1 {
		return messages[0].Content
	}

	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			b.WriteString(m.Content)
			b.WriteString("\n\n")
		case RoleAssistant:
			b.WriteString("Assistant: ")
			b.WriteString(m.Content)
			b.WriteString("\n")
		default:
			b.WriteString("User: ")
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}
