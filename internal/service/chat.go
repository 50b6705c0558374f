package service

import (
	"context"
	"strings"
	"time"

	"github.com/nutrimind/backend/internal/types"
)

// Chat sends a free-form message to the assistant, carrying prior turns as
// conversation context. Chat replies are prose, not JSON; no extraction runs.
func (s *AIService) Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error) {
	messages := BuildChatMessages(req)

	raw, err := s.client.Complete(ctx, messages, s.temperature)
	if err != nil {
		return nil, s.fail(CapabilityChat, "", err)
	}

	return &types.ChatResponse{
		Success:     true,
		Message:     raw,
		Suggestions: extractSuggestions(raw),
		Timestamp:   time.Now(),
	}, nil
}

// extractSuggestions derives follow-up suggestions from the reply with a
// fixed keyword heuristic. Order follows the checks below, capped at three.
func extractSuggestions(response string) []string {
	text := strings.ToLower(response)

	var suggestions []string
	if strings.Contains(text, "recipe") {
		suggestions = append(suggestions, "Show me similar recipes")
	}
	if strings.Contains(text, "nutrition") || strings.Contains(text, "calorie") {
		suggestions = append(suggestions, "Analyze nutritional content")
	}
	if strings.Contains(text, "you could") {
		suggestions = append(suggestions, "Tell me healthy alternatives")
	}

	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
