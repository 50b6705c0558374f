package service

import "context"

// stubCompletionClient returns a canned response and records what it was
// called with.
type stubCompletionClient struct {
	response string
	err      error

	calls           int
	lastMessages    []Message
	lastTemperature float64
}

func (s *stubCompletionClient) Complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	s.calls++
	s.lastMessages = messages
	s.lastTemperature = temperature
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}
