package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrimind/backend/internal/types"
)

func TestChat(t *testing.T) {
	t.Run("should return the reply with the conversation context sent", func(t *testing.T) {
		stub := &stubCompletionClient{response: "Oats are a great start to the day."}
		svc := NewAIService(stub, 0.7)

		result, err := svc.Chat(context.Background(), types.ChatRequest{
			Message: "What about breakfast?",
			Context: []types.ChatMessage{{Role: "user", Content: "I train in the mornings"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Oats are a great start to the day.", result.Message)
		require.Len(t, stub.lastMessages, 3)
		assert.Equal(t, RoleSystem, stub.lastMessages[0].Role)
		assert.Equal(t, "I train in the mornings", stub.lastMessages[1].Content)
		assert.Equal(t, "What about breakfast?", stub.lastMessages[2].Content)
		assert.Equal(t, 0.7, stub.lastTemperature)
	})

	t.Run("should wrap client failures in a tagged generation error", func(t *testing.T) {
		svc := NewAIService(&stubCompletionClient{err: &TransportError{Err: errors.New("connection refused")}}, 0.7)

		result, err := svc.Chat(context.Background(), types.ChatRequest{Message: "hello"})

		require.Error(t, err)
		assert.Nil(t, result)
		var genErr *GenerationError
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, CapabilityChat, genErr.Capability)
	})
}

func TestExtractSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		response string
		expected []string
	}{
		{
			name:     "no keywords",
			response: "Drink plenty of water.",
			expected: nil,
		},
		{
			name:     "recipe keyword",
			response: "This recipe uses seasonal vegetables.",
			expected: []string{"Show me similar recipes"},
		},
		{
			name:     "nutrition keyword",
			response: "The nutrition profile is balanced.",
			expected: []string{"Analyze nutritional content"},
		},
		{
			name:     "calorie keyword",
			response: "That is about 300 calories per portion.",
			expected: []string{"Analyze nutritional content"},
		},
		{
			name:     "alternatives keyword",
			response: "You could swap butter for olive oil.",
			expected: []string{"Tell me healthy alternatives"},
		},
		{
			name:     "all keywords in fixed order",
			response: "This RECIPE is low in calories; you could add greens.",
			expected: []string{
				"Show me similar recipes",
				"Analyze nutritional content",
				"Tell me healthy alternatives",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractSuggestions(tt.response))
		})
	}
}
