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


package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/staffsearch"
	"github.com/poiesic/staffsearch/ai"
	"github.com/poiesic/staffsearch/ai/openai"
	"github.com/poiesic/staffsearch/core"
	"github.com/poiesic/staffsearch/corpus"
	"github.com/poiesic/staffsearch/directory"
	"github.com/poiesic/staffsearch/storage"
	"github.com/poiesic/staffsearch/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "staffsearch",
		Usage: "Grounded staffing search over an employee corpus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Embed the employee corpus and persist the index snapshot",
				Action: buildCommand,
				Flags:  append(corpusFlags(), snapshotFlag()),
			},
			{
				Name:      "chat",
				Usage:     "Answer a staffing request from retrieved evidence",
				ArgsUsage: "<request>",
				Action:    chatCommand,
				Flags: append(corpusFlags(), snapshotFlag(),
					&cli.StringFlag{
						Name:  "generation-model",
						Usage: "Generation model name",
						Value: ai.DefaultConfig().GenerationModel,
					},
					&cli.Float64Flag{
						Name:  "temperature",
						Usage: "Generation temperature",
						Value: ai.DefaultConfig().Temperature,
					},
				),
			},
			{
				Name:      "evidence",
				Usage:     "Show the evidence units a request retrieves, with scores",
				ArgsUsage: "<request>",
				Action:    evidenceCommand,
				Flags: append(corpusFlags(), snapshotFlag(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of evidence units to retrieve",
						Value:   5,
					},
				),
			},
			{
				Name:   "search",
				Usage:  "Filter employees by exact attributes, no embedding involved",
				Action: searchCommand,
				Flags: append(corpusFlags(),
					&cli.StringFlag{
						Name:  "name",
						Usage: "Name substring to match",
					},
					&cli.StringSliceFlag{
						Name:  "skill",
						Usage: "Required skill (repeatable, all must match)",
					},
					&cli.IntFlag{
						Name:  "min-experience",
						Usage: "Minimum years of experience",
					},
					&cli.StringFlag{
						Name:  "availability",
						Usage: "Availability status (available, busy, unavailable)",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data",
			Aliases:  []string{"f"},
			Usage:    "Path to the employee corpus JSON file",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: ai.DefaultConfig().EmbeddingHost,
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: ai.DefaultConfig().EmbeddingModel,
		},
	}
}

func snapshotFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "Path to the BadgerDB snapshot directory (omit for in-memory only)",
	}
}

// newService loads the corpus and wires a service from command-line flags.
func newService(c *cli.Context) (*staffsearch.Service, error) {
	store, err := corpus.NewStore(c.String("data"))
	if err != nil {
		return nil, err
	}
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	aiOpts := []ai.ConfigOption{
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	}
	if model := c.String("generation-model"); model != "" {
		aiOpts = append(aiOpts,
			ai.WithGenerationModel(model),
			ai.WithTemperature(c.Float64("temperature")))
	}
	aiConfig := ai.NewConfig(aiOpts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := openai.NewProvider(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI provider: %w", err)
	}

	opts := []staffsearch.ServiceOption{
		staffsearch.WithEmbeddingModel(aiConfig.EmbeddingModel),
	}
	if dbPath := c.String("db"); dbPath != "" {
		backend, err := badger.OpenBackend(dbPath, false)
		if err != nil {
			provider.Close()
			return nil, fmt.Errorf("failed to open snapshot database: %w", err)
		}
		indexStore, err := badger.NewIndexStore(backend)
		if err != nil {
			backend.Close()
			provider.Close()
			return nil, err
		}
		opts = append(opts, staffsearch.WithIndexStore(indexStore))
	}

	svc, err := staffsearch.NewService(records, provider, opts...)
	if err != nil {
		provider.Close()
		return nil, err
	}
	return svc, nil
}

// readyService returns a service with an installed index, restoring the
// persisted snapshot when possible and rebuilding otherwise.
func readyService(c *cli.Context) (*staffsearch.Service, error) {
	svc, err := newService(c)
	if err != nil {
		return nil, err
	}

	ctx := c.Context
	if c.String("db") != "" {
		err = svc.LoadPersisted(ctx)
		if err == nil {
			return svc, nil
		}
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrModelMismatch) {
			svc.Close()
			return nil, err
		}
		slog.Info("no usable snapshot, rebuilding index", "reason", err)
	}

	if err := svc.Rebuild(ctx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("failed to build index: %w", err)
	}
	return svc, nil
}

func buildCommand(c *cli.Context) error {
	svc, err := newService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.Rebuild(c.Context); err != nil {
		return fmt.Errorf("failed to build index: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Indexed %d employees\n", len(svc.Records()))
	return nil
}

func chatCommand(c *cli.Context) error {
	request := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if request == "" {
		return fmt.Errorf("a staffing request is required")
	}

	svc, err := readyService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	result, err := svc.Chat(c.Context, request)
	if err != nil {
		return err
	}

	fmt.Println(result.Text)
	if len(result.UngroundedNames) > 0 {
		fmt.Fprintf(os.Stderr, "\nWarning: answer mentions employees outside the evidence: %s\n",
			strings.Join(result.UngroundedNames, ", "))
	}
	if len(result.Provenance) > 0 {
		fmt.Fprintln(os.Stderr, "\nEvidence:")
		for _, p := range result.Provenance {
			fmt.Fprintf(os.Stderr, "  %s / %s / %s [%0.3f]\n",
				p.RecordName, p.Type, p.Detail, p.Score)
		}
	}
	return nil
}

func evidenceCommand(c *cli.Context) error {
	request := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if request == "" {
		return fmt.Errorf("a staffing request is required")
	}

	svc, err := readyService(c)
	if err != nil {
		return err
	}
	defer svc.Close()

	evidence, err := svc.Evidence(c.Context, request, c.Int("top-k"))
	if err != nil {
		return err
	}

	fmt.Printf("Found %d evidence units\n", len(evidence))
	for i, hit := range evidence {
		fmt.Printf("%d: %s / %s / %s [%0.3f]\n",
			i, hit.Unit.RecordName, hit.Unit.Type, hit.Unit.Detail, hit.Score)
	}
	return nil
}

func searchCommand(c *cli.Context) error {
	store, err := corpus.NewStore(c.String("data"))
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	availability := core.Availability(strings.ToLower(c.String("availability")))
	if availability != "" && !availability.Valid() {
		return fmt.Errorf("invalid availability %q", c.String("availability"))
	}

	filter := directory.Filter{
		Name:          c.String("name"),
		Skills:        c.StringSlice("skill"),
		MinExperience: c.Int("min-experience"),
		Availability:  availability,
	}

	matched := filter.Apply(records)
	fmt.Printf("Matched %d employees\n", len(matched))
	for _, record := range matched {
		fmt.Printf("  %d: %s (%s, %d years, %s)\n",
			record.ID, record.Name, strings.Join(record.Skills, "/"),
			record.ExperienceYears, record.Availability)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
