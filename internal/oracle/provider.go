// Package oracle wraps the external strategy-generation models. Providers
// are plain injected clients constructed at the composition root; there is
// no hidden global client state.
package oracle

import "context"

// Provider is the interface for generation model backends.
type Provider interface {
	// Name returns the provider name (e.g., "claude", "openai").
	Name() string

	// Available returns true if the provider is configured and ready.
	Available() bool

	// Generate sends a prompt and returns the raw response text.
	Generate(ctx context.Context, req Request) (Response, error)
}

// Request is a prompt request to a generation provider.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Response is the provider's response.
type Response struct {
	Content string
	Model   string
}
