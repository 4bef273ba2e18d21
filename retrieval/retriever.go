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

package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/staffsearch/ai"
	"github.com/poiesic/staffsearch/core"
	"github.com/poiesic/staffsearch/index"
)

const (
	// DefaultTopK is the default number of evidence units returned.
	DefaultTopK = 5

	// DefaultScoreFloor is the minimum similarity score a unit must reach
	// to count as evidence. Units below it are discarded even when fewer
	// than maxHits units qualify.
	DefaultScoreFloor = 0.3

	// overfetchFactor is how many extra candidates are pulled from the
	// index before floor filtering and deduplication shrink the set.
	overfetchFactor = 3
)

// IndexSource supplies the current index snapshot for a retrieval.
// *index.Handle satisfies this interface.
type IndexSource interface {
	Snapshot() *index.Index
}

// Retriever turns a free-text query into a deduplicated, floor-filtered
// evidence set drawn from the current index snapshot.
type Retriever struct {
	source     IndexSource
	embedder   ai.Embedder
	scoreFloor float32
	logger     *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithScoreFloor sets the minimum similarity score for evidence.
// Default is DefaultScoreFloor.
func WithScoreFloor(floor float32) Option {
	return func(r *Retriever) error {
		if floor < 0 || floor > 1 {
			return ErrInvalidScoreFloor
		}
		r.scoreFloor = floor
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRetriever creates a new retriever over the given index source.
func NewRetriever(source IndexSource, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Retriever{
		source:     source,
		embedder:   embedder,
		scoreFloor: DefaultScoreFloor,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	r.logger = r.logger.With("component", "retrieval")

	return r, nil
}

// Retrieve returns up to maxHits evidence units for the query.
// Returns an empty set, not an error, when nothing clears the score floor.
func (r *Retriever) Retrieve(ctx context.Context, query string, maxHits int) (core.EvidenceSet, error) {
	return r.RetrieveWithMonitor(ctx, query, maxHits, nil)
}

// RetrieveWithMonitor retrieves evidence with monitoring.
// The monitor receives callbacks at each stage of the retrieval process.
func (r *Retriever) RetrieveWithMonitor(ctx context.Context, query string, maxHits int, monitor RetrievalMonitor) (core.EvidenceSet, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	if maxHits < 1 {
		return nil, ErrInvalidLimit
	}

	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query, maxHits)

	snapshot := r.source.Snapshot()
	if snapshot == nil {
		return nil, ErrIndexNotReady
	}

	// Overfetch so floor filtering and dedup still leave maxHits candidates
	hits, err := snapshot.Search(ctx, r.embedder, query, maxHits*overfetchFactor)
	if err != nil {
		r.logger.Error("index search failed", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterIndexSearch(hits)

	seen := make(map[string]bool, len(hits))
	results := make(core.EvidenceSet, 0, maxHits)
	for _, hit := range hits {
		if hit.Score < r.scoreFloor {
			monitor.BelowFloor(hit, r.scoreFloor)
			// Hits are score-ordered, everything after is below the floor too
			break
		}
		key := hit.Unit.Key()
		if seen[key] {
			monitor.Duplicate(hit)
			continue
		}
		seen[key] = true
		results = append(results, hit)
		if len(results) == maxHits {
			break
		}
	}

	r.logger.Debug("retrieval complete",
		"query", query, "candidates", len(hits), "results", len(results))
	monitor.Finish(results)

	return results, nil
}
