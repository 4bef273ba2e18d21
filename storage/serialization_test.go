package storage

import (
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVector() IndexedVector {
	unit := core.RetrievableUnit{
		Type:         core.UnitTypeSkill,
		SourceRecord: 7,
		RecordName:   "Ana Petrov",
		Detail:       "Go",
		Text:         "Employee Ana Petrov has expertise in Go with 4 years of experience.",
	}
	unit.ID = core.UnitIDFromContent(unit.Key() + "\n" + unit.Text)
	return IndexedVector{
		Unit:   unit,
		Vector: []float32{0.1, -0.5, 0.25, 1},
	}
}

func TestIndexedVectorRoundTrip(t *testing.T) {
	original := sampleVector()

	data := MarshalIndexedVector(original)
	got, err := UnmarshalIndexedVector(data)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestIndexedVectorEmptyVector(t *testing.T) {
	original := sampleVector()
	original.Vector = nil

	got, err := UnmarshalIndexedVector(MarshalIndexedVector(original))
	require.NoError(t, err)
	assert.Equal(t, original.Unit, got.Unit)
	assert.Empty(t, got.Vector)
}

func TestIndexedVectorTruncatedData(t *testing.T) {
	data := MarshalIndexedVector(sampleVector())

	_, err := UnmarshalIndexedVector(data[:len(data)/2])
	assert.Error(t, err)
}

func TestManifestRoundTrip(t *testing.T) {
	original := Manifest{Model: "embeddinggemma", Dimension: 768, UnitCount: 42}

	got, err := UnmarshalManifest(MarshalManifest(original))
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestUnitSkip(t *testing.T) {
	v := sampleVector()
	unitData := make([]byte, UnitMUS.Size(v.Unit))
	UnitMUS.Marshal(v.Unit, unitData)

	n, err := UnitMUS.Skip(unitData)
	require.NoError(t, err)
	assert.Equal(t, len(unitData), n)
}

func TestUnicodeFields(t *testing.T) {
	v := sampleVector()
	v.Unit.RecordName = "Tomás Rivera"
	v.Unit.Text = "Employee Tomás Rivera worked on the Facturación project."

	got, err := UnmarshalIndexedVector(MarshalIndexedVector(v))
	require.NoError(t, err)
	assert.Equal(t, v.Unit.RecordName, got.Unit.RecordName)
	assert.Equal(t, v.Unit.Text, got.Unit.Text)
}
