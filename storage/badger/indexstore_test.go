package badger

import (
	"context"
	"fmt"
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/poiesic/staffsearch/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryStore(t *testing.T) storage.IndexStore {
	t.Helper()
	store, err := NewMemoryIndexStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func snapshot(unitCount int) (storage.Manifest, []storage.IndexedVector) {
	vectors := make([]storage.IndexedVector, unitCount)
	for i := range vectors {
		unit := core.RetrievableUnit{
			Type:         core.UnitTypeSkill,
			SourceRecord: core.RecordID(i),
			RecordName:   fmt.Sprintf("Employee %d", i),
			Detail:       fmt.Sprintf("Skill%d", i),
			Text:         fmt.Sprintf("Employee %d has expertise in skill %d.", i, i),
		}
		unit.ID = core.UnitIDFromContent(unit.Key() + "\n" + unit.Text)
		vectors[i] = storage.IndexedVector{
			Unit:   unit,
			Vector: []float32{float32(i), 1, 0.5},
		}
	}
	manifest := storage.Manifest{Model: "test-model", Dimension: 3, UnitCount: unitCount}
	return manifest, vectors
}

func TestLoadIndexNotFound(t *testing.T) {
	store := memoryStore(t)

	_, _, err := store.LoadIndex(context.Background(), "test-model")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSaveAndLoadIndex(t *testing.T) {
	store := memoryStore(t)
	manifest, vectors := snapshot(10)

	require.NoError(t, store.SaveIndex(context.Background(), manifest, vectors))

	gotManifest, gotVectors, err := store.LoadIndex(context.Background(), "test-model")
	require.NoError(t, err)
	assert.Equal(t, manifest, gotManifest)
	require.Len(t, gotVectors, 10)
	for i, got := range gotVectors {
		assert.Equal(t, vectors[i].Unit, got.Unit, "vector %d out of order", i)
		assert.Equal(t, vectors[i].Vector, got.Vector)
	}
}

func TestSaveIndexReplacesWholesale(t *testing.T) {
	store := memoryStore(t)

	firstManifest, firstVectors := snapshot(10)
	require.NoError(t, store.SaveIndex(context.Background(), firstManifest, firstVectors))

	// A smaller snapshot must fully replace the larger one
	secondManifest, secondVectors := snapshot(3)
	require.NoError(t, store.SaveIndex(context.Background(), secondManifest, secondVectors))

	gotManifest, gotVectors, err := store.LoadIndex(context.Background(), "test-model")
	require.NoError(t, err)
	assert.Equal(t, 3, gotManifest.UnitCount)
	assert.Len(t, gotVectors, 3)
}

func TestLoadIndexModelMismatch(t *testing.T) {
	store := memoryStore(t)
	manifest, vectors := snapshot(2)
	require.NoError(t, store.SaveIndex(context.Background(), manifest, vectors))

	_, _, err := store.LoadIndex(context.Background(), "other-model")
	assert.ErrorIs(t, err, storage.ErrModelMismatch)
}

func TestSaveIndexCountMismatch(t *testing.T) {
	store := memoryStore(t)
	manifest, vectors := snapshot(2)
	manifest.UnitCount = 5

	err := store.SaveIndex(context.Background(), manifest, vectors)
	assert.ErrorIs(t, err, storage.ErrSerializationFailed)
}

func TestClosedStore(t *testing.T) {
	store, err := NewMemoryIndexStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	manifest, vectors := snapshot(1)
	assert.ErrorIs(t, store.SaveIndex(context.Background(), manifest, vectors), storage.ErrStorageClosed)

	_, _, err = store.LoadIndex(context.Background(), "test-model")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestSaveIndexEmptySnapshot(t *testing.T) {
	store := memoryStore(t)
	manifest := storage.Manifest{Model: "test-model", Dimension: 0, UnitCount: 0}

	require.NoError(t, store.SaveIndex(context.Background(), manifest, nil))

	gotManifest, gotVectors, err := store.LoadIndex(context.Background(), "test-model")
	require.NoError(t, err)
	assert.Equal(t, 0, gotManifest.UnitCount)
	assert.Empty(t, gotVectors)
}
