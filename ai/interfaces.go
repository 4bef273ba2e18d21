package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Embeddings must be deterministic: identical text always yields an
// identical vector for a given model.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// a batch. The returned slice contains embeddings in the same order as
	// the input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator is the opaque text-completion capability behind answer
// composition. It is invoked with a fixed system instruction and a rendered
// user prompt, and returns free text. Correctness of the generated prose is
// out of scope here; callers bound the call with a context deadline.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate produces a completion for the given system instruction and
	// user prompt. Returns an error if the underlying capability is
	// unreachable or errors; it never fabricates output on failure.
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Provider aggregates AI services for convenient initialization and
// lifecycle management. A provider creates and manages Embedder and
// Generator instances, ensuring they share configuration appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Generator returns the text generation service.
	// The returned Generator is safe for concurrent use.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
