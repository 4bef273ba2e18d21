/*
 * Copyright 2025 Poiesic, Incorporated

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 *     http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package mock

import (
	"github.com/poiesic/staffsearch/ai"
)

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	embedder  *MockEmbedder
	generator *MockGenerator
}

// NewMockProvider creates a provider backed by deterministic mocks.
func NewMockProvider() ai.Provider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		generator: NewMockGenerator(),
	}
}

// Embedder returns the mock embedder.
func (m *MockProvider) Embedder() ai.Embedder {
	return m.embedder
}

// Generator returns the mock generator.
func (m *MockProvider) Generator() ai.Generator {
	return m.generator
}

// Close is a no-op for the mock provider.
func (m *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock for test configuration.
func (m *MockProvider) GetMockEmbedder() *MockEmbedder {
	return m.embedder
}

// GetMockGenerator returns the underlying mock for test configuration.
func (m *MockProvider) GetMockGenerator() *MockGenerator {
	return m.generator
}
