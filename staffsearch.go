// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package staffsearch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/poiesic/staffsearch/ai"
	"github.com/poiesic/staffsearch/answer"
	"github.com/poiesic/staffsearch/core"
	"github.com/poiesic/staffsearch/directory"
	"github.com/poiesic/staffsearch/expand"
	"github.com/poiesic/staffsearch/index"
	"github.com/poiesic/staffsearch/retrieval"
	"github.com/poiesic/staffsearch/storage"
)

var (
	// ErrNoRecords indicates the service was created without employee records.
	ErrNoRecords = errors.New("at least one employee record is required")

	// ErrProviderRequired indicates a nil AI provider.
	ErrProviderRequired = errors.New("AI provider is required")

	// ErrNoIndexStore indicates a persistence operation without a configured store.
	ErrNoIndexStore = errors.New("no index store configured")
)

// Service ties the staffing corpus, embedding index, retrieval policy, and
// answer composition together behind one entry point.
//
// Queries are served from an immutable index snapshot; Rebuild and
// LoadPersisted install a new snapshot atomically, so queries running during
// a rebuild see either the old or the new index, never a mix.
type Service struct {
	records  []core.EmployeeRecord
	units    []core.RetrievableUnit
	provider ai.Provider
	handle   *index.Handle
	composer *answer.Composer
	store    storage.IndexStore
	model    string
	topK     int
	logger   *slog.Logger

	retriever *retrieval.Retriever

	rebuildMu sync.Mutex
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	store         storage.IndexStore
	model         string
	topK          int
	scoreFloor    float32
	hasScoreFloor bool
	contextBudget int
	logger        *slog.Logger
}

// WithIndexStore attaches snapshot persistence.
// Rebuild then saves the index and LoadPersisted can restore it on startup.
// The service takes ownership and closes the store on Close.
func WithIndexStore(store storage.IndexStore) ServiceOption {
	return func(o *serviceOptions) {
		o.store = store
	}
}

// WithEmbeddingModel names the embedding model recorded in persisted
// snapshots. Default is the default AI configuration's embedding model.
func WithEmbeddingModel(model string) ServiceOption {
	return func(o *serviceOptions) {
		if model != "" {
			o.model = model
		}
	}
}

// WithTopK sets how many evidence units a query retrieves.
// Default is retrieval.DefaultTopK.
func WithTopK(k int) ServiceOption {
	return func(o *serviceOptions) {
		if k > 0 {
			o.topK = k
		}
	}
}

// WithScoreFloor sets the minimum similarity score for evidence.
// Default is retrieval.DefaultScoreFloor.
func WithScoreFloor(floor float32) ServiceOption {
	return func(o *serviceOptions) {
		o.scoreFloor = floor
		o.hasScoreFloor = true
	}
}

// WithContextBudget sets the evidence context size in runes.
// Default is answer.DefaultContextBudget.
func WithContextBudget(budget int) ServiceOption {
	return func(o *serviceOptions) {
		if budget > 0 {
			o.contextBudget = budget
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewService creates a staffing search service over the given records.
// Records must already be validated; corpus.Store.Load returns them in that
// state. The index starts empty: call Rebuild or LoadPersisted before
// querying.
func NewService(records []core.EmployeeRecord, provider ai.Provider, opts ...ServiceOption) (*Service, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	options := &serviceOptions{
		model:         ai.DefaultConfig().EmbeddingModel,
		topK:          retrieval.DefaultTopK,
		contextBudget: answer.DefaultContextBudget,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	handle := &index.Handle{}

	retrieverOpts := []retrieval.Option{retrieval.WithLogger(options.logger)}
	if options.hasScoreFloor {
		retrieverOpts = append(retrieverOpts, retrieval.WithScoreFloor(options.scoreFloor))
	}
	retriever, err := retrieval.NewRetriever(handle, provider.Embedder(), retrieverOpts...)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(records))
	for i, record := range records {
		names[i] = record.Name
	}

	composer, err := answer.NewComposer(retriever, provider.Generator(),
		answer.WithTopK(options.topK),
		answer.WithContextBudget(options.contextBudget),
		answer.WithKnownNames(names),
		answer.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		records:   append([]core.EmployeeRecord(nil), records...),
		units:     expand.ExpandAll(records),
		provider:  provider,
		handle:    handle,
		retriever: retriever,
		composer:  composer,
		store:     options.store,
		model:     options.model,
		topK:      options.topK,
		logger:    options.logger.With("component", "staffsearch"),
	}, nil
}

// Rebuild embeds the expanded corpus and installs the result as the current
// index snapshot. With an index store configured, the new snapshot is also
// persisted; a persistence failure is returned, but the in-memory snapshot
// stays installed and queryable.
func (s *Service) Rebuild(ctx context.Context) error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	idx, err := index.Build(ctx, s.provider.Embedder(), s.units, s.model,
		index.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.handle.Swap(idx)

	if s.store == nil {
		return nil
	}

	units := idx.Units()
	rawVectors := idx.Vectors()
	vectors := make([]storage.IndexedVector, len(units))
	for i := range units {
		vectors[i] = storage.IndexedVector{Unit: units[i], Vector: rawVectors[i]}
	}
	manifest := storage.Manifest{
		Model:     idx.Model(),
		Dimension: idx.Dim(),
		UnitCount: idx.Len(),
	}
	if err := s.store.SaveIndex(ctx, manifest, vectors); err != nil {
		return fmt.Errorf("index built but snapshot not persisted: %w", err)
	}
	return nil
}

// LoadPersisted restores the index snapshot from the configured store,
// skipping re-embedding. Returns storage.ErrNotFound when nothing is stored
// and storage.ErrModelMismatch when the stored snapshot was built with a
// different embedding model; callers usually fall back to Rebuild.
func (s *Service) LoadPersisted(ctx context.Context) error {
	if s.store == nil {
		return ErrNoIndexStore
	}

	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	manifest, stored, err := s.store.LoadIndex(ctx, s.model)
	if err != nil {
		return err
	}

	units := make([]core.RetrievableUnit, len(stored))
	vectors := make([][]float32, len(stored))
	for i, v := range stored {
		units[i] = v.Unit
		vectors[i] = v.Vector
	}

	idx, err := index.Restore(units, vectors, manifest.Model)
	if err != nil {
		return err
	}
	s.handle.Swap(idx)

	s.logger.Info("index snapshot restored",
		"unitCount", idx.Len(), "model", idx.Model())
	return nil
}

// Chat answers a staffing query with a grounded natural-language response.
func (s *Service) Chat(ctx context.Context, query string) (*answer.Answer, error) {
	return s.composer.Compose(ctx, query)
}

// Evidence returns the raw evidence units a query retrieves, without
// generating an answer. maxHits <= 0 uses the service's configured top-k.
func (s *Service) Evidence(ctx context.Context, query string, maxHits int) (core.EvidenceSet, error) {
	if maxHits <= 0 {
		maxHits = s.topK
	}
	return s.retriever.Retrieve(ctx, query, maxHits)
}

// Search returns the employee records matching a structured filter.
// This bypasses the index entirely; no embedding is involved.
func (s *Service) Search(filter directory.Filter) []core.EmployeeRecord {
	return filter.Apply(s.records)
}

// Records returns a copy of the employee records the service was built with.
func (s *Service) Records() []core.EmployeeRecord {
	return append([]core.EmployeeRecord(nil), s.records...)
}

// Ready reports whether an index snapshot is installed and queries can run.
func (s *Service) Ready() bool {
	return s.handle.Ready()
}

// Close releases the AI provider and, when configured, the index store.
func (s *Service) Close() error {
	var firstErr error
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
		firstErr = err
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("error closing index store", "err", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
