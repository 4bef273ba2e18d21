package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/poiesic/staffsearch/core"
)

var outFileName = flag.String("out", "employees.json", "path of the corpus file to write")

// Sample staffing corpus for local experiments. Names and projects are
// fictional.
var employees = []core.EmployeeRecord{
	{ID: 1, Name: "Ana Petrov", Skills: []string{"Go", "SQL", "PostgreSQL"}, ExperienceYears: 4,
		Projects: []string{"Billing Platform", "Invoice API"}, Availability: core.AvailabilityAvailable},
	{ID: 2, Name: "Marcus Webb", Skills: []string{"Python", "Airflow", "SQL"}, ExperienceYears: 7,
		Projects: []string{"Data Pipeline", "Warehouse Migration"}, Availability: core.AvailabilityBusy},
	{ID: 3, Name: "Priya Sharma", Skills: []string{"Kubernetes", "Terraform", "Go"}, ExperienceYears: 5,
		Projects: []string{"Cluster Migration", "Deploy Tooling"}, Availability: core.AvailabilityAvailable},
	{ID: 4, Name: "Tomás Rivera", Skills: []string{"Java", "Spring", "Kafka"}, ExperienceYears: 9,
		Projects: []string{"Order Service", "Event Bus"}, Availability: core.AvailabilityUnavailable},
	{ID: 5, Name: "Yuki Tanaka", Skills: []string{"TypeScript", "React", "GraphQL"}, ExperienceYears: 3,
		Projects: []string{"Customer Portal"}, Availability: core.AvailabilityAvailable},
	{ID: 6, Name: "Leila Haddad", Skills: []string{"Python", "PyTorch", "MLOps"}, ExperienceYears: 6,
		Projects: []string{"Churn Model", "Feature Store"}, Availability: core.AvailabilityBusy},
	{ID: 7, Name: "Viktor Lindqvist", Skills: []string{"Rust", "C++", "Embedded"}, ExperienceYears: 11,
		Projects: []string{"Sensor Firmware"}, Availability: core.AvailabilityAvailable},
	{ID: 8, Name: "Grace Okonkwo", Skills: []string{"Go", "gRPC", "Redis"}, ExperienceYears: 5,
		Projects: []string{"Session Service", "Rate Limiter"}, Availability: core.AvailabilityAvailable},
	{ID: 9, Name: "Daniel Cohen", Skills: []string{"SQL", "dbt", "Snowflake"}, ExperienceYears: 8,
		Projects: []string{"Analytics Marts"}, Availability: core.AvailabilityBusy},
	{ID: 10, Name: "Marta Kowalska", Skills: []string{"Java", "Android", "Kotlin"}, ExperienceYears: 6,
		Projects: []string{"Field App"}, Availability: core.AvailabilityAvailable},
	{ID: 11, Name: "Hassan Ali", Skills: []string{"DevOps", "AWS", "Terraform"}, ExperienceYears: 10,
		Projects: []string{"Cloud Landing Zone", "Cost Dashboard"}, Availability: core.AvailabilityUnavailable},
	{ID: 12, Name: "Sofia Marino", Skills: []string{"Python", "FastAPI", "PostgreSQL"}, ExperienceYears: 2,
		Projects: []string{}, Availability: core.AvailabilityAvailable},
}

type document struct {
	Employees []core.EmployeeRecord `json:"employees"`
}

func main() {
	flag.Parse()

	for i := range employees {
		if err := core.ValidateEmployeeRecord(&employees[i]); err != nil {
			slog.Error("invalid sample record", "err", err)
			os.Exit(1)
		}
	}

	data, err := json.MarshalIndent(document{Employees: employees}, "", "  ")
	if err != nil {
		slog.Error("failed to marshal corpus", "err", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outFileName, data, 0644); err != nil {
		slog.Error("failed to write corpus file", "file", *outFileName, "err", err)
		os.Exit(1)
	}

	slog.Info("corpus written", "file", *outFileName, "employees", len(employees))
}
