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

package index

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/staffsearch/ai"
	"github.com/poiesic/staffsearch/core"
)

// embedBatchSize is the number of unit texts sent to the embedder per call.
const embedBatchSize = 32

// Index is an immutable in-memory embedding index over retrievable units.
// Vectors are stored unit-normalized, so similarity reduces to a dot product.
// An Index is never mutated after construction; rebuilds produce a new Index
// which is swapped in through a Handle.
type Index struct {
	units   []core.RetrievableUnit
	vectors [][]float32
	model   string
	dim     int
}

// buildConfig holds optional Build parameters.
type buildConfig struct {
	poolSize int
	logger   *slog.Logger
}

// BuildOption configures index construction.
type BuildOption func(*buildConfig) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BuildOption {
	return func(c *buildConfig) error {
		if size < 1 {
			size = 1
		}
		c.poolSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// Build embeds every unit and assembles a searchable index.
// Unit order is preserved, so vector i always corresponds to unit i.
// Embedding batches run concurrently on a worker pool; any batch failure
// fails the whole build, leaving no partially built index behind.
func Build(ctx context.Context, embedder ai.Embedder, units []core.RetrievableUnit, model string, opts ...BuildOption) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if strings.TrimSpace(model) == "" {
		return nil, ErrModelRequired
	}

	cfg := &buildConfig{
		poolSize: runtime.NumCPU() / 2,
		logger:   slog.Default(),
	}
	if cfg.poolSize < 1 {
		cfg.poolSize = 1
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	logger := cfg.logger.With("component", "index")

	for _, unit := range units {
		if strings.TrimSpace(unit.Text) == "" {
			return nil, fmt.Errorf("%w: unit %s", ErrEmptyUnitText, unit.Key())
		}
	}

	if len(units) == 0 {
		return &Index{model: model}, nil
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	vectors := make([][]float32, len(units))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for start := 0; start < len(units); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(units) {
			end = len(units)
		}
		batchStart, batchEnd := start, end

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, batchEnd-batchStart)
			for i := batchStart; i < batchEnd; i++ {
				texts[i-batchStart] = units[i].Text
			}

			embedded, embedErr := embedder.EmbedTexts(ctx, texts)
			if embedErr == nil && len(embedded) != len(texts) {
				embedErr = fmt.Errorf("%w: got %d vectors for %d texts",
					ErrEmbedding, len(embedded), len(texts))
			}
			if embedErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = embedErr
				}
				mu.Unlock()
				return
			}

			for i, vector := range embedded {
				vectors[batchStart+i] = normalize(vector)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if firstErr != nil {
		logger.Error("index build failed", "unitCount", len(units), "err", firstErr)
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, firstErr)
	}

	dim, err := uniformDimension(vectors)
	if err != nil {
		return nil, err
	}

	logger.Info("index built", "unitCount", len(units), "dimension", dim, "model", model)

	return &Index{
		units:   append([]core.RetrievableUnit(nil), units...),
		vectors: vectors,
		model:   model,
		dim:     dim,
	}, nil
}

// Restore assembles an index from previously computed vectors, normalizing
// them again in case the stored copies drifted. Used when loading a persisted
// snapshot instead of re-embedding the corpus.
func Restore(units []core.RetrievableUnit, vectors [][]float32, model string) (*Index, error) {
	if strings.TrimSpace(model) == "" {
		return nil, ErrModelRequired
	}
	if len(units) != len(vectors) {
		return nil, fmt.Errorf("%w: %d units, %d vectors", ErrVectorCount, len(units), len(vectors))
	}
	if len(units) == 0 {
		return &Index{model: model}, nil
	}

	normalized := make([][]float32, len(vectors))
	for i, vector := range vectors {
		normalized[i] = normalize(vector)
	}

	dim, err := uniformDimension(normalized)
	if err != nil {
		return nil, err
	}

	return &Index{
		units:   append([]core.RetrievableUnit(nil), units...),
		vectors: normalized,
		model:   model,
		dim:     dim,
	}, nil
}

// Search embeds the query and returns the top maxHits units ranked by cosine
// similarity, highest first. Ties break toward the lower unit position so
// repeated searches over the same index return the same order.
func (idx *Index) Search(ctx context.Context, embedder ai.Embedder, query string, maxHits int) (core.EvidenceSet, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if maxHits < 1 || len(idx.units) == 0 {
		return core.EvidenceSet{}, nil
	}

	embedding, err := embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmbedding, err)
	}
	queryVector := normalize(embedding)
	if len(queryVector) != idx.dim {
		return nil, fmt.Errorf("%w: query dimension %d, index dimension %d",
			ErrDimensionMismatch, len(queryVector), idx.dim)
	}

	type scored struct {
		position int
		score    float32
	}
	hits := make([]scored, len(idx.units))
	for i, vector := range idx.vectors {
		hits[i] = scored{position: i, score: dot(queryVector, vector)}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].position < hits[j].position
	})

	if maxHits > len(hits) {
		maxHits = len(hits)
	}

	results := make(core.EvidenceSet, maxHits)
	for i := 0; i < maxHits; i++ {
		results[i] = core.EvidenceUnit{
			Unit:  idx.units[hits[i].position],
			Score: hits[i].score,
		}
	}
	return results, nil
}

// Len returns the number of indexed units.
func (idx *Index) Len() int {
	return len(idx.units)
}

// Model returns the embedding model the index was built with.
func (idx *Index) Model() string {
	return idx.model
}

// Dim returns the embedding dimension, or 0 for an empty index.
func (idx *Index) Dim() int {
	return idx.dim
}

// Units returns a copy of the indexed units in position order.
func (idx *Index) Units() []core.RetrievableUnit {
	return append([]core.RetrievableUnit(nil), idx.units...)
}

// Vectors returns a copy of the normalized vectors in position order.
func (idx *Index) Vectors() [][]float32 {
	out := make([][]float32, len(idx.vectors))
	for i, vector := range idx.vectors {
		out[i] = append([]float32(nil), vector...)
	}
	return out
}

// uniformDimension verifies all vectors share one dimension and returns it.
func uniformDimension(vectors [][]float32) (int, error) {
	dim := len(vectors[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: zero-length vector", ErrDimensionMismatch)
	}
	for i, vector := range vectors {
		if len(vector) != dim {
			return 0, fmt.Errorf("%w: vector %d has dimension %d, expected %d",
				ErrDimensionMismatch, i, len(vector), dim)
		}
	}
	return dim, nil
}

// normalize returns a unit-length copy of the vector.
// A zero vector is returned unchanged.
func normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return append([]float32(nil), vector...)
	}
	norm := float32(math.Sqrt(sumSquares))
	out := make([]float32, len(vector))
	for i, v := range vector {
		out[i] = v / norm
	}
	return out
}

// dot computes the inner product of two equal-length vectors.
func dot(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
