package driven

import "context"

// LLMService provides generative text operations for follow-up drafting.
// This is an optional service - when nil, follow-up generation degrades
// gracefully to deterministic templates.
//
// Implementations may include:
//   - OpenAI (chat completions)
//   - Any OpenAI-compatible endpoint (Azure, local inference servers)
type LLMService interface {
	// Chat conducts a conversation and returns the first choice's
	// message content. A non-2xx response or malformed body is a
	// recoverable failure; callers fall back to canned output.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used to verify an API key without running inference.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
