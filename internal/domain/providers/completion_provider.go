package providers

import "context"

// CompletionProvider defines the interface for LLM structured extraction.
type CompletionProvider interface {
	// Complete sends a system and user prompt and returns the raw completion
	// text. Callers requesting JSON output are responsible for decoding it.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
