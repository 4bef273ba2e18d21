package mock

import (
	"context"
	"sync/atomic"
)

// MockGenerator is a test double for ai.Generator.
// It allows custom behavior injection via function fields.
//
// The default behavior returns the user prompt unchanged, so a composed
// answer contains whatever evidence context was rendered into the prompt.
// Grounding checks downstream can then verify that named employees made it
// into the prompt without a live language model.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, the user prompt is echoed back.
	GenerateFunc func(ctx context.Context, system, prompt string) (string, error)

	// callCount is atomic so one mock can serve concurrent callers.
	callCount atomic.Int64
}

// NewMockGenerator creates a mock generator with default echo behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns a deterministic completion for the given prompt.
func (m *MockGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	m.callCount.Add(1)

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, system, prompt)
	}

	return prompt, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return int(m.callCount.Load())
}

// Reset clears the call count and custom function.
func (m *MockGenerator) Reset() {
	m.callCount.Store(0)
	m.GenerateFunc = nil
}
