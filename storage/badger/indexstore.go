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


package badger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/staffsearch/storage"
)

// indexStore implements storage.IndexStore on a BadgerDB backend.
type indexStore struct {
	backend *Backend
	logger  *slog.Logger
}

var _ storage.IndexStore = (*indexStore)(nil)

// NewIndexStore creates an index store on the given backend.
// Note: Returns interface to enforce abstraction (see storage package docs).
func NewIndexStore(backend *Backend) (storage.IndexStore, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	return &indexStore{
		backend: backend,
		logger:  slog.Default().With("component", "indexstore"),
	}, nil
}

// SaveIndex replaces the stored snapshot wholesale within one transaction.
func (s *indexStore) SaveIndex(ctx context.Context, manifest storage.Manifest, vectors []storage.IndexedVector) error {
	if s.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	if manifest.UnitCount != len(vectors) {
		return fmt.Errorf("%w: manifest says %d units, got %d vectors",
			storage.ErrSerializationFailed, manifest.UnitCount, len(vectors))
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		// Remove the previous snapshot's vector entries
		staleKeys, err := collectKeys(tx, vectorKeyPrefix())
		if err != nil {
			return err
		}
		for _, key := range staleKeys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}

		if err := tx.Set(makeManifestKey(), storage.MarshalManifest(manifest)); err != nil {
			return err
		}
		for position, vector := range vectors {
			if err := tx.Set(makeVectorKey(position), storage.MarshalIndexedVector(vector)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return err
	}

	s.logger.Info("index snapshot saved",
		"model", manifest.Model, "unitCount", manifest.UnitCount, "dimension", manifest.Dimension)
	return nil
}

// LoadIndex retrieves the stored snapshot for the given embedding model.
func (s *indexStore) LoadIndex(ctx context.Context, model string) (storage.Manifest, []storage.IndexedVector, error) {
	if s.backend.IsClosed() {
		return storage.Manifest{}, nil, storage.ErrStorageClosed
	}

	var manifest storage.Manifest
	var vectors []storage.IndexedVector

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeManifestKey())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		err = item.Value(func(val []byte) error {
			m, umErr := storage.UnmarshalManifest(val)
			if umErr != nil {
				return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, umErr)
			}
			manifest = m
			return nil
		})
		if err != nil {
			return err
		}

		if manifest.Model != model {
			return fmt.Errorf("%w: stored %q, requested %q",
				storage.ErrModelMismatch, manifest.Model, model)
		}

		vectors = make([]storage.IndexedVector, 0, manifest.UnitCount)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = vectorKeyPrefix()
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				vector, umErr := storage.UnmarshalIndexedVector(val)
				if umErr != nil {
					return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, umErr)
				}
				vectors = append(vectors, vector)
				return nil
			})
			if err != nil {
				return err
			}
		}

		if len(vectors) != manifest.UnitCount {
			return fmt.Errorf("%w: manifest says %d units, found %d",
				storage.ErrTruncatedData, manifest.UnitCount, len(vectors))
		}
		return nil
	}, false)
	if err != nil {
		return storage.Manifest{}, nil, err
	}

	return manifest, vectors, nil
}

// Close closes the underlying backend.
func (s *indexStore) Close() error {
	return s.backend.Close()
}

// collectKeys gathers all keys under a prefix. Keys are copied so they stay
// valid after the iterator closes.
func collectKeys(tx *badger.Txn, prefix []byte) ([][]byte, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := tx.NewIterator(opts)
	defer it.Close()

	var keys [][]byte
	for it.Rewind(); it.Valid(); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	return keys, nil
}
