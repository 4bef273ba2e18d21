package expand

import (
	"fmt"
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anaRecord() core.EmployeeRecord {
	return core.EmployeeRecord{
		ID:              1,
		Name:            "Ana",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 4,
		Projects:        []string{"Billing"},
		Availability:    core.AvailabilityAvailable,
	}
}

func TestExpand_UnitCount(t *testing.T) {
	tests := []struct {
		name     string
		skills   []string
		projects []string
	}{
		{"one skill no projects", []string{"Go"}, nil},
		{"two skills one project", []string{"Go", "SQL"}, []string{"Billing"}},
		{"many of both", []string{"Go", "SQL", "Rust", "Kafka"}, []string{"Billing", "Ledger", "Reporting"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := anaRecord()
			record.Skills = tt.skills
			record.Projects = tt.projects

			units := Expand(record)
			assert.Len(t, units, 1+len(tt.skills)+len(tt.projects))
			assert.Equal(t, core.UnitTypeProfile, units[0].Type)
		})
	}
}

func TestExpand_Order(t *testing.T) {
	units := Expand(anaRecord())
	require.Len(t, units, 4)

	assert.Equal(t, core.UnitTypeProfile, units[0].Type)
	assert.Equal(t, core.UnitTypeSkill, units[1].Type)
	assert.Equal(t, "Go", units[1].Detail)
	assert.Equal(t, core.UnitTypeSkill, units[2].Type)
	assert.Equal(t, "SQL", units[2].Detail)
	assert.Equal(t, core.UnitTypeProject, units[3].Type)
	assert.Equal(t, "Billing", units[3].Detail)
}

func TestExpand_Deterministic(t *testing.T) {
	first := Expand(anaRecord())
	second := Expand(anaRecord())
	assert.Equal(t, first, second)
}

func TestExpand_UnitsAreSelfContained(t *testing.T) {
	record := anaRecord()
	for _, unit := range Expand(record) {
		t.Run(unit.Key(), func(t *testing.T) {
			// A reader of any single unit can judge name, experience,
			// and availability without consulting another unit.
			assert.Contains(t, unit.Text, record.Name)
			assert.Contains(t, unit.Text, fmt.Sprintf("%d", record.ExperienceYears))
			assert.Contains(t, unit.Text, string(record.Availability))
			assert.Equal(t, record.ID, unit.SourceRecord)
			assert.Equal(t, record.Name, unit.RecordName)
			assert.NotZero(t, unit.ID)
		})
	}
}

func TestExpand_SkillUnitMentionsSkillAndProjects(t *testing.T) {
	units := Expand(anaRecord())
	goUnit := units[1]

	assert.Contains(t, goUnit.Text, "Go")
	assert.Contains(t, goUnit.Text, "Billing")
}

func TestExpand_EmptyProjects(t *testing.T) {
	record := anaRecord()
	record.Projects = nil

	units := Expand(record)
	require.Len(t, units, 3) // profile + 2 skills, no fabricated project unit
	for _, unit := range units {
		assert.NotEqual(t, core.UnitTypeProject, unit.Type)
	}
}

func TestExpandAll_PreservesRecordOrder(t *testing.T) {
	ana := anaRecord()
	bo := core.EmployeeRecord{
		ID:              2,
		Name:            "Bo",
		Skills:          []string{"Python"},
		ExperienceYears: 2,
		Availability:    core.AvailabilityBusy,
	}

	units := ExpandAll([]core.EmployeeRecord{ana, bo})
	require.Len(t, units, 4+2)
	assert.Equal(t, core.RecordID(1), units[0].SourceRecord)
	assert.Equal(t, core.RecordID(2), units[4].SourceRecord)
	assert.Equal(t, core.UnitTypeProfile, units[4].Type)
}

func TestExpand_UniqueUnitIDs(t *testing.T) {
	units := ExpandAll([]core.EmployeeRecord{anaRecord(), {
		ID:              2,
		Name:            "Bo",
		Skills:          []string{"Go"},
		ExperienceYears: 4,
		Projects:        []string{"Billing"},
		Availability:    core.AvailabilityAvailable,
	}})

	seen := make(map[core.UnitID]bool)
	for _, unit := range units {
		assert.False(t, seen[unit.ID], "duplicate unit ID %d for %s", unit.ID, unit.Key())
		seen[unit.ID] = true
	}
}
