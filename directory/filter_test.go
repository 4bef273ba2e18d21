package directory

import (
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/stretchr/testify/assert"
)

var records = []core.EmployeeRecord{
	{
		ID:              1,
		Name:            "Ana Petrov",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 4,
		Projects:        []string{"Billing Platform"},
		Availability:    core.AvailabilityAvailable,
	},
	{
		ID:              2,
		Name:            "Marcus Webb",
		Skills:          []string{"Python", "SQL", "Airflow"},
		ExperienceYears: 7,
		Projects:        []string{"Data Pipeline"},
		Availability:    core.AvailabilityBusy,
	},
	{
		ID:              3,
		Name:            "Priya Sharma",
		Skills:          []string{"Go", "Kubernetes"},
		ExperienceYears: 5,
		Projects:        []string{"Cluster Migration"},
		Availability:    core.AvailabilityAvailable,
	},
}

func ids(matched []core.EmployeeRecord) []core.RecordID {
	out := make([]core.RecordID, len(matched))
	for i, r := range matched {
		out[i] = r.ID
	}
	return out
}

func TestFilterZeroValueMatchesAll(t *testing.T) {
	matched := Filter{}.Apply(records)
	assert.Equal(t, []core.RecordID{1, 2, 3}, ids(matched))
}

func TestFilterByName(t *testing.T) {
	matched := Filter{Name: "ana"}.Apply(records)
	assert.Equal(t, []core.RecordID{1}, ids(matched))

	matched = Filter{Name: "WEBB"}.Apply(records)
	assert.Equal(t, []core.RecordID{2}, ids(matched))
}

func TestFilterRequiresAllSkills(t *testing.T) {
	matched := Filter{Skills: []string{"go"}}.Apply(records)
	assert.Equal(t, []core.RecordID{1, 3}, ids(matched))

	// Both skills must be held, not just one
	matched = Filter{Skills: []string{"Go", "sql"}}.Apply(records)
	assert.Equal(t, []core.RecordID{1}, ids(matched))

	matched = Filter{Skills: []string{"Go", "Airflow"}}.Apply(records)
	assert.Empty(t, matched)
}

func TestFilterByMinExperience(t *testing.T) {
	matched := Filter{MinExperience: 5}.Apply(records)
	assert.Equal(t, []core.RecordID{2, 3}, ids(matched))
}

func TestFilterByAvailability(t *testing.T) {
	matched := Filter{Availability: core.AvailabilityBusy}.Apply(records)
	assert.Equal(t, []core.RecordID{2}, ids(matched))
}

func TestFilterCombinedCriteria(t *testing.T) {
	matched := Filter{
		Skills:        []string{"Go"},
		MinExperience: 5,
		Availability:  core.AvailabilityAvailable,
	}.Apply(records)
	assert.Equal(t, []core.RecordID{3}, ids(matched))
}

func TestFilterNoMatches(t *testing.T) {
	matched := Filter{Name: "nobody"}.Apply(records)
	assert.Empty(t, matched)
}
