package storage

import (
	"context"

	"github.com/poiesic/staffsearch/core"
)

// Manifest describes a stored index snapshot.
type Manifest struct {
	// Model is the embedding model the snapshot was built with.
	Model string

	// Dimension is the embedding dimension of every stored vector.
	Dimension int

	// UnitCount is the number of indexed vectors in the snapshot.
	UnitCount int
}

// IndexedVector pairs a retrievable unit with its embedding.
type IndexedVector struct {
	Unit   core.RetrievableUnit
	Vector []float32
}

// IndexStore persists index snapshots so a restart can skip re-embedding
// the corpus. Implementations must be thread-safe and support concurrent
// access.
type IndexStore interface {
	// SaveIndex replaces the stored snapshot wholesale.
	// A partially written snapshot is never observable.
	SaveIndex(ctx context.Context, manifest Manifest, vectors []IndexedVector) error

	// LoadIndex retrieves the stored snapshot.
	// Returns ErrNotFound if no snapshot is stored, and ErrModelMismatch
	// if the stored snapshot was built with a different embedding model.
	LoadIndex(ctx context.Context, model string) (Manifest, []IndexedVector, error)

	// Close closes the storage backend and releases resources.
	Close() error
}
