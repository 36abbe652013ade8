package ai

import "context"

// Completer performs a single chat completion against a language model.
// Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete sends a system prompt and a user prompt to the model and
	// returns the raw response text. Callers expecting structured output
	// must tolerate answers wrapped in markdown code fences and treat any
	// parse failure as recoverable; see the llmjson package.
	// Returns an error if the call itself fails.
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch. The returned slice contains embeddings in the same order as
	// the input texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management.
type Provider interface {
	// Completer returns the chat completion service.
	// The returned Completer is safe for concurrent use.
	Completer() Completer

	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
