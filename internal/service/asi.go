package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nutrimind/backend/config"
)

// ASIClient talks to the ASI-1 chat-completions REST endpoint
type ASIClient struct {
	apiKey     string
	apiURL     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewASIClient creates a new ASIClient instance
func NewASIClient(cfg *config.Config) (*ASIClient, error) {
	if cfg.ASIAPIKey == "" {
		return nil, &AuthError{Reason: "ASI_API_KEY or ASI_API_KEY_FILE must be set"}
	}

	return &ASIClient{
		apiKey:    cfg.ASIAPIKey,
		apiURL:    cfg.ASIAPIURL,
		model:     cfg.ASIModel,
		maxTokens: cfg.MaxTokens,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

type asiRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// Complete sends the conversation to the completion endpoint and returns the
// generated text
func (c *ASIClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	reqBody := asiRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", &AuthError{Reason: fmt.Sprintf("provider rejected credential (status %d)", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", &ProviderError{StatusCode: resp.StatusCode, Message: "no completion in response"}
	}

	return result.Choices[0].Message.Content, nil
}
