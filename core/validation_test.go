package core

import (
	"errors"
	"testing"
)

func validRecord() *EmployeeRecord {
	return &EmployeeRecord{
		ID:              1,
		Name:            "Ana",
		Skills:          []string{"Go", "SQL"},
		ExperienceYears: 4,
		Projects:        []string{"Billing"},
		Availability:    AvailabilityAvailable,
	}
}

func TestValidateEmployeeRecord(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*EmployeeRecord)
		wantErr error
	}{
		{
			name:    "valid record",
			modify:  func(r *EmployeeRecord) {},
			wantErr: nil,
		},
		{
			name:    "empty projects list is valid",
			modify:  func(r *EmployeeRecord) { r.Projects = nil },
			wantErr: nil,
		},
		{
			name:    "zero experience is valid",
			modify:  func(r *EmployeeRecord) { r.ExperienceYears = 0 },
			wantErr: nil,
		},
		{
			name:    "empty name",
			modify:  func(r *EmployeeRecord) { r.Name = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "whitespace name",
			modify:  func(r *EmployeeRecord) { r.Name = "   " },
			wantErr: ErrEmptyName,
		},
		{
			name:    "no skills",
			modify:  func(r *EmployeeRecord) { r.Skills = nil },
			wantErr: ErrNoSkills,
		},
		{
			name:    "blank skill entry",
			modify:  func(r *EmployeeRecord) { r.Skills = []string{"Go", " "} },
			wantErr: ErrBlankSkill,
		},
		{
			name:    "blank project entry",
			modify:  func(r *EmployeeRecord) { r.Projects = []string{""} },
			wantErr: ErrBlankProject,
		},
		{
			name:    "negative experience",
			modify:  func(r *EmployeeRecord) { r.ExperienceYears = -1 },
			wantErr: ErrNegativeExperience,
		},
		{
			name:    "unknown availability",
			modify:  func(r *EmployeeRecord) { r.Availability = "sabbatical" },
			wantErr: ErrInvalidAvailability,
		},
		{
			name:    "empty availability",
			modify:  func(r *EmployeeRecord) { r.Availability = "" },
			wantErr: ErrInvalidAvailability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.modify(record)

			err := ValidateEmployeeRecord(record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEmployeeRecord() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEmployeeRecord() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("ValidateEmployeeRecord() error = %v, does not wrap ErrInvalidRecord", err)
			}
		})
	}
}

func TestValidateEmployeeRecord_Nil(t *testing.T) {
	err := ValidateEmployeeRecord(nil)
	if !errors.Is(err, ErrInvalidRecord) {
		t.Errorf("ValidateEmployeeRecord(nil) error = %v, want ErrInvalidRecord", err)
	}
}
