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

import "errors"

// Domain validation errors
var (
	// ErrInvalidRecord indicates an EmployeeRecord failed validation.
	ErrInvalidRecord = errors.New("invalid employee record")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("employee name cannot be empty")

	// ErrNoSkills indicates the Skills list is empty.
	ErrNoSkills = errors.New("employee must list at least one skill")

	// ErrBlankSkill indicates a skill entry is blank.
	ErrBlankSkill = errors.New("skill cannot be blank")

	// ErrBlankProject indicates a project entry is blank.
	ErrBlankProject = errors.New("project cannot be blank")

	// ErrNegativeExperience indicates ExperienceYears is negative.
	ErrNegativeExperience = errors.New("experience years cannot be negative")

	// ErrInvalidAvailability indicates an unknown availability value.
	ErrInvalidAvailability = errors.New("invalid availability")
)
