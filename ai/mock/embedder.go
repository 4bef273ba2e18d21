package mock

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"sync/atomic"
)

// mockDimension is the embedding dimension produced by the default mock.
const mockDimension = 256

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields.
//
// The default behavior hashes each word of the text into a fixed-dimension
// bag-of-words vector, plus one shared baseline component. Texts sharing
// words therefore score measurably higher cosine similarity than unrelated
// texts, which lets retrieval tests exercise ranking and score floors
// without a live embedding model. Identical text always yields an identical
// vector.
type MockEmbedder struct {
	// EmbedTextFunc is called by EmbedText if set.
	// If nil, uses default deterministic behavior.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc is called by EmbedTexts if set.
	// If nil, uses default deterministic behavior.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// callCount is atomic so one mock can serve concurrent callers,
	// which the ai.Embedder contract allows.
	callCount atomic.Int64
}

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText generates a deterministic embedding based on word hashes.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount.Add(1)

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}

	return wordBagVector(text, mockDimension), nil
}

// EmbedTexts generates deterministic embeddings for multiple texts.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount.Add(1)

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = wordBagVector(text, mockDimension)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom functions.
func (m *MockEmbedder) Reset() {
	m.callCount.Store(0)
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// wordBagVector creates a deterministic embedding from the distinct words of
// the text. Dimension 0 is reserved for a baseline component proportional to
// the word count, so any two non-empty texts keep a small positive cosine
// similarity and overlap in actual words lifts the score from there.
func wordBagVector(text string, dim int) []float32 {
	words := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}-")
		if word != "" {
			words[word] = true
		}
	}

	vector := make([]float32, dim)
	if len(words) == 0 {
		vector[0] = 1
		return vector
	}

	for word := range words {
		h := fnv.New32a()
		h.Write([]byte(word))
		bucket := 1 + int(h.Sum32()%uint32(dim-1))
		vector[bucket] += 1
	}
	vector[0] = 0.5 * float32(math.Sqrt(float64(len(words))))

	// Normalize to unit length
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	norm := float32(math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] /= norm
	}

	return vector
}
