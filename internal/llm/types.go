package llm

import (
	"context"
	"errors"
)

// represents different text-generation providers
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// upstream failure classification. Clients wrap these so callers can
// distinguish a throttled provider from an unavailable one with errors.Is.
var (
	// the provider rejected the call with a rate-limit response
	ErrThrottled = errors.New("generation service throttled")

	// the provider could not be reached or returned a server error
	ErrUnavailable = errors.New("generation service unavailable")
)

// generates free-form or JSON-structured text from a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// contains all inputs for a single generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int  // 0 uses the client default
	JSONOutput   bool // request structured JSON output where the provider supports it
}

// contains the raw generated text and token accounting
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// tracks token consumption for a generation call
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// holds configuration for text generator initialization
type Config struct {
	Provider    Provider
	APIKey      string
	Model       string // e.g., "gpt-4-turbo-preview" or "claude-3-5-sonnet-20241022"
	MaxTokens   int
	Temperature float32
}
