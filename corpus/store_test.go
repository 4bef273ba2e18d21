package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestNewStore(t *testing.T) {
	t.Run("valid path", func(t *testing.T) {
		store, err := NewStore("testdata/employees.json")
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewStore("")
		assert.ErrorIs(t, err, ErrPathRequired)
	})
}

func TestLoad(t *testing.T) {
	store, err := NewStore("testdata/employees.json")
	require.NoError(t, err)

	records, err := store.Load()
	require.NoError(t, err)
	require.Len(t, records, 4)

	first := records[0]
	assert.Equal(t, core.RecordID(1), first.ID)
	assert.Equal(t, "Ana", first.Name)
	assert.Equal(t, []string{"Go", "SQL"}, first.Skills)
	assert.Equal(t, 4, first.ExperienceYears)
	assert.Equal(t, []string{"Billing"}, first.Projects)
	assert.Equal(t, core.AvailabilityAvailable, first.Availability)

	// Records with empty project lists still load.
	assert.Empty(t, records[3].Projects)
}

func TestLoad_MissingFile(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrDataSource)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeCorpus(t, `{"employees": [`)
	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrDataSource)
}

func TestLoad_EmptyCorpus(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty list", `{"employees": []}`},
		{"missing key", `{"staff": []}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(writeCorpus(t, tt.contents))
			require.NoError(t, err)

			_, err = store.Load()
			assert.ErrorIs(t, err, ErrDataSource)
		})
	}
}

func TestLoad_InvalidRecordFailsWholeLoad(t *testing.T) {
	// Second record has no skills; the first, valid record must not leak out.
	path := writeCorpus(t, `{
	  "employees": [
	    {"id": 1, "name": "Ana", "skills": ["Go"], "experience_years": 4, "projects": [], "availability": "available"},
	    {"id": 2, "name": "Bo", "skills": [], "experience_years": 1, "projects": [], "availability": "busy"}
	  ]
	}`)
	store, err := NewStore(path)
	require.NoError(t, err)

	records, err := store.Load()
	assert.ErrorIs(t, err, ErrDataSource)
	assert.Nil(t, records)
}

func TestLoad_DuplicateID(t *testing.T) {
	path := writeCorpus(t, `{
	  "employees": [
	    {"id": 1, "name": "Ana", "skills": ["Go"], "experience_years": 4, "projects": [], "availability": "available"},
	    {"id": 1, "name": "Bo", "skills": ["SQL"], "experience_years": 1, "projects": [], "availability": "busy"}
	  ]
	}`)
	store, err := NewStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrDataSource)
}

func TestLoad_NormalizesAvailabilityCase(t *testing.T) {
	path := writeCorpus(t, `{
	  "employees": [
	    {"id": 1, "name": "Ana", "skills": ["Go"], "experience_years": 4, "projects": [], "availability": " Available"}
	  ]
	}`)
	store, err := NewStore(path)
	require.NoError(t, err)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, core.AvailabilityAvailable, records[0].Availability)
}
