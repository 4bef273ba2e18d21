package core

import (
	"encoding/binary"
	"strconv"

	"github.com/go-crypt/x/blake2b"
)

// RecordID is the unique identifier of an employee record in the corpus.
type RecordID int

// UnitID is a unique identifier for a retrievable unit.
// It is generated by content-based hashing, so identical units always
// carry identical IDs across rebuilds.
type UnitID uint64

// UnitIDFromContent generates a deterministic UnitID from text content
// using BLAKE2b hashing.
func UnitIDFromContent(text string) UnitID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return UnitID(binary.LittleEndian.Uint64(sum))
}

// Availability describes whether an employee can take on new work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// Valid reports whether a is one of the known availability states.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// EmployeeRecord is one entry of the authoritative staffing corpus.
// Records are loaded once at startup and are immutable for the process
// lifetime; the corpus is replaced wholesale when it changes.
type EmployeeRecord struct {
	ID              RecordID     `json:"id"`
	Name            string       `json:"name"`
	Skills          []string     `json:"skills"`
	ExperienceYears int          `json:"experience_years"`
	Projects        []string     `json:"projects"`
	Availability    Availability `json:"availability"`
}

// UnitType identifies the granularity of a retrievable unit.
type UnitType int

const (
	// UnitTypeProfile is the full-record unit, one per employee.
	UnitTypeProfile UnitType = iota + 1
	// UnitTypeSkill is a unit focused on a single skill of an employee.
	UnitTypeSkill
	// UnitTypeProject is a unit focused on a single project of an employee.
	UnitTypeProject
)

// String returns the wire name of the unit type.
func (t UnitType) String() string {
	switch t {
	case UnitTypeProfile:
		return "profile"
	case UnitTypeSkill:
		return "skill"
	case UnitTypeProject:
		return "project"
	}
	return "unknown"
}

// RetrievableUnit is one indexable text fragment derived from exactly one
// employee record. Units are never mutated after creation; the whole set is
// rebuilt when the corpus changes.
type RetrievableUnit struct {
	ID           UnitID
	Type         UnitType
	SourceRecord RecordID
	RecordName   string
	Detail       string // skill or project name; empty for profile units
	Text         string // rendered content used for embedding
}

// Key returns the deduplication identity of the unit: source record,
// unit type, and type-specific detail. Two units with the same Key refer
// to the same evidence and must not appear twice in one EvidenceSet.
func (u *RetrievableUnit) Key() string {
	return strconv.Itoa(int(u.SourceRecord)) + "|" + u.Type.String() + "|" + u.Detail
}

// EvidenceUnit pairs a retrieved unit with its similarity score.
type EvidenceUnit struct {
	Unit  RetrievableUnit
	Score float32
}

// EvidenceSet is a ranked, deduplicated sequence of evidence units produced
// for a single query, ordered by descending similarity score. It is
// transient: constructed per query and discarded after the answer is
// composed.
type EvidenceSet []EvidenceUnit

// Provenance records where one piece of assembled context came from.
type Provenance struct {
	Unit         UnitID
	SourceRecord RecordID
	RecordName   string
	Type         UnitType
	Detail       string
	Score        float32
}

// AnswerContext is the bounded textual context handed to the answer
// composer, together with the original query and per-unit provenance.
type AnswerContext struct {
	Query      string
	Text       string
	Truncated  bool // true when the budget cut unit text or dropped units
	Provenance []Provenance
}

// Empty reports whether no evidence made it into the context.
func (c *AnswerContext) Empty() bool {
	return len(c.Provenance) == 0
}
