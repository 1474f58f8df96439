package explain

import "context"

// Provider is the LLM abstraction behind mistake explanations.
type Provider interface {
	// Generate sends a prompt and returns the plain-text completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message for this single-turn request.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness. Default 0 (deterministic).
	Temperature float64
}

// Response holds the LLM's output.
type Response struct {
	Content string
	Model   string
}
