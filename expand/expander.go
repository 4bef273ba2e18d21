package expand

import (
	"fmt"
	"strings"

	"github.com/poiesic/staffsearch/core"
)

// Expand turns one employee record into its retrievable units: the profile
// unit first, then one unit per skill in original order, then one unit per
// project in original order. It is a pure function of its input; the same
// record always yields the same sequence.
//
// Each unit's text repeats the record fields a reader needs to judge a
// staffing criterion from that unit alone. The answer generator only ever
// sees unit text, never the structured record, so self-contained units are
// what keeps generated answers grounded.
func Expand(record core.EmployeeRecord) []core.RetrievableUnit {
	units := make([]core.RetrievableUnit, 0, 1+len(record.Skills)+len(record.Projects))

	units = append(units, newUnit(record, core.UnitTypeProfile, "", profileText(record)))
	for _, skill := range record.Skills {
		units = append(units, newUnit(record, core.UnitTypeSkill, skill, skillText(record, skill)))
	}
	for _, project := range record.Projects {
		units = append(units, newUnit(record, core.UnitTypeProject, project, projectText(record, project)))
	}

	return units
}

// ExpandAll expands every record in corpus order into one flat unit
// sequence, the order the embedding index is built in.
func ExpandAll(records []core.EmployeeRecord) []core.RetrievableUnit {
	var units []core.RetrievableUnit
	for _, record := range records {
		units = append(units, Expand(record)...)
	}
	return units
}

func newUnit(record core.EmployeeRecord, unitType core.UnitType, detail, text string) core.RetrievableUnit {
	unit := core.RetrievableUnit{
		Type:         unitType,
		SourceRecord: record.ID,
		RecordName:   record.Name,
		Detail:       detail,
		Text:         text,
	}
	unit.ID = core.UnitIDFromContent(unit.Key() + "\n" + text)
	return unit
}

func profileText(record core.EmployeeRecord) string {
	skills := strings.Join(record.Skills, ", ")
	projects := strings.Join(record.Projects, ", ")

	primary := record.Skills
	if len(primary) > 3 {
		primary = primary[:3]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Employee Profile:\n")
	fmt.Fprintf(&sb, "ID: %d\n", record.ID)
	fmt.Fprintf(&sb, "Name: %s\n", record.Name)
	fmt.Fprintf(&sb, "Skills: %s\n", skills)
	fmt.Fprintf(&sb, "Experience: %d years\n", record.ExperienceYears)
	fmt.Fprintf(&sb, "Projects: %s\n", projects)
	fmt.Fprintf(&sb, "Availability: %s\n", record.Availability)
	fmt.Fprintf(&sb, "\nKey Details:\n")
	fmt.Fprintf(&sb, "- Primary Skills: %s\n", strings.Join(primary, ", "))
	fmt.Fprintf(&sb, "- Years of Experience: %d\n", record.ExperienceYears)
	fmt.Fprintf(&sb, "- Current Availability: %s\n", record.Availability)
	fmt.Fprintf(&sb, "- Project Experience: %s", projects)
	return sb.String()
}

func skillText(record core.EmployeeRecord, skill string) string {
	return fmt.Sprintf(
		"Employee %s has expertise in %s with %d years of experience.\nProjects involving %s: %s\nAvailability: %s",
		record.Name, skill, record.ExperienceYears,
		skill, strings.Join(record.Projects, ", "),
		record.Availability,
	)
}

func projectText(record core.EmployeeRecord, project string) string {
	return fmt.Sprintf(
		"Employee %s worked on %s project.\nSkills used: %s\nExperience: %d years\nAvailability: %s",
		record.Name, project,
		strings.Join(record.Skills, ", "),
		record.ExperienceYears, record.Availability,
	)
}
