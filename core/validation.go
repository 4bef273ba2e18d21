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


package core

import (
	"fmt"
	"strings"
)

// ValidateEmployeeRecord validates an EmployeeRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Skills must contain at least one non-blank entry
//   - Projects entries, when present, must not be blank
//   - ExperienceYears must not be negative
//   - Availability must be a known value
//
// NOT validated here:
//   - ID uniqueness (checked across the whole corpus at load time)
func ValidateEmployeeRecord(record *EmployeeRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if strings.TrimSpace(record.Name) == "" {
		return fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, record.ID, ErrEmptyName)
	}

	if len(record.Skills) == 0 {
		return fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, record.ID, ErrNoSkills)
	}
	for i, skill := range record.Skills {
		if strings.TrimSpace(skill) == "" {
			return fmt.Errorf("%w: record %d: skill %d: %w", ErrInvalidRecord, record.ID, i, ErrBlankSkill)
		}
	}

	for i, project := range record.Projects {
		if strings.TrimSpace(project) == "" {
			return fmt.Errorf("%w: record %d: project %d: %w", ErrInvalidRecord, record.ID, i, ErrBlankProject)
		}
	}

	if record.ExperienceYears < 0 {
		return fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, record.ID, ErrNegativeExperience)
	}

	if !record.Availability.Valid() {
		return fmt.Errorf("%w: record %d: %w: %q", ErrInvalidRecord, record.ID, ErrInvalidAvailability, record.Availability)
	}

	return nil
}
