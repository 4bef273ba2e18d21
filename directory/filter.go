/*
 * Copyright 2025 Poiesic, Incorporated

 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at

 *     http://www.apache.org/licenses/LICENSE-2.0

 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package directory

import (
	"strings"

	"github.com/poiesic/staffsearch/core"
)

// Filter selects employee records by structured attributes.
// The zero value matches every record; each set field narrows the result.
// All comparisons on names and skills are case-insensitive.
type Filter struct {
	// Name matches records whose name contains this substring.
	Name string

	// Skills matches records that hold every listed skill.
	Skills []string

	// MinExperience matches records with at least this many years.
	MinExperience int

	// Availability matches records with exactly this status.
	Availability core.Availability
}

// Matches reports whether the record satisfies every set criterion.
func (f Filter) Matches(record core.EmployeeRecord) bool {
	if f.Name != "" &&
		!strings.Contains(strings.ToLower(record.Name), strings.ToLower(f.Name)) {
		return false
	}

	if len(f.Skills) > 0 {
		held := make(map[string]bool, len(record.Skills))
		for _, skill := range record.Skills {
			held[strings.ToLower(skill)] = true
		}
		for _, want := range f.Skills {
			if !held[strings.ToLower(want)] {
				return false
			}
		}
	}

	if record.ExperienceYears < f.MinExperience {
		return false
	}

	if f.Availability != "" && record.Availability != f.Availability {
		return false
	}

	return true
}

// Apply returns the records matching the filter, preserving input order.
func (f Filter) Apply(records []core.EmployeeRecord) []core.EmployeeRecord {
	matched := make([]core.EmployeeRecord, 0, len(records))
	for _, record := range records {
		if f.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}
