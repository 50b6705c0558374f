package service

import "fmt"

// Capability names one of the AI features for error tagging
type Capability string

const (
	CapabilityMealPlan     Capability = "meal_plan"
	CapabilityRecipeSearch Capability = "recipe_search"
	CapabilityChat         Capability = "chat"
	CapabilityNutrition    Capability = "nutrition_analysis"
)

// AuthError indicates a missing or rejected credential. Not retryable.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// TransportError indicates a network-level failure reaching the provider.
// Callers may retry with backoff.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError indicates the provider was reachable but returned an error
// status or an unexpected response envelope.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

// ExtractionError indicates no JSON-shaped region of the expected shape was
// found in the model output. Retrying with the same prompt will not help.
type ExtractionError struct {
	Shape Shape
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("no JSON %s found in model output", e.Shape)
}

// MalformedJSONError indicates a JSON region was located but failed to parse.
// Raw carries the model output for diagnostic logging only; it must never be
// surfaced to end callers.
type MalformedJSONError struct {
	Raw string
	Err error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in model output: %v", e.Err)
}

func (e *MalformedJSONError) Unwrap() error { return e.Err }

// GenerationError is the single failure type surfaced by orchestrators,
// tagging the underlying cause with the capability that failed.
type GenerationError struct {
	Capability Capability
	Err        error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Capability, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
