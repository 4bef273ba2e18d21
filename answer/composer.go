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

package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/staffsearch/ai"
	"github.com/poiesic/staffsearch/core"
)

// DefaultGenerationTimeout bounds a single language model call.
const DefaultGenerationTimeout = 60 * time.Second

// EvidenceRetriever supplies evidence for a query.
// *retrieval.Retriever satisfies this interface.
type EvidenceRetriever interface {
	Retrieve(ctx context.Context, query string, maxHits int) (core.EvidenceSet, error)
}

// Answer is a composed response with its supporting evidence trail.
type Answer struct {
	Query           string
	Text            string
	NoMatch         bool   // true when no evidence cleared the score floor
	Truncated       bool   // true when evidence was cut to fit the budget
	Provenance      []core.Provenance
	UngroundedNames []string // employee names in the answer but not in the context
}

// Composer turns queries into grounded natural-language answers.
// It retrieves evidence, assembles a bounded context, and sends it to the
// language model. When retrieval yields nothing, the model is never called
// and a fixed no-match answer is returned instead.
type Composer struct {
	retriever     EvidenceRetriever
	generator     ai.Generator
	topK          int
	contextBudget int
	timeout       time.Duration
	knownNames    []string
	logger        *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer) error

// WithTopK sets how many evidence units a query retrieves.
// Default is 5.
func WithTopK(k int) Option {
	return func(c *Composer) error {
		if k < 1 {
			return ErrInvalidTopK
		}
		c.topK = k
		return nil
	}
}

// WithContextBudget sets the evidence context size in runes.
// Default is DefaultContextBudget.
func WithContextBudget(budget int) Option {
	return func(c *Composer) error {
		if budget < 1 {
			return ErrInvalidBudget
		}
		c.contextBudget = budget
		return nil
	}
}

// WithGenerationTimeout bounds each language model call.
// Default is DefaultGenerationTimeout.
func WithGenerationTimeout(timeout time.Duration) Option {
	return func(c *Composer) error {
		if timeout > 0 {
			c.timeout = timeout
		}
		return nil
	}
}

// WithKnownNames supplies the employee names audited for grounding.
// Names mentioned in an answer but absent from the evidence context are
// reported on the Answer and logged.
func WithKnownNames(names []string) Option {
	return func(c *Composer) error {
		c.knownNames = append([]string(nil), names...)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewComposer creates a new answer composer.
func NewComposer(retriever EvidenceRetriever, generator ai.Generator, opts ...Option) (*Composer, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	c := &Composer{
		retriever:     retriever,
		generator:     generator,
		topK:          5,
		contextBudget: DefaultContextBudget,
		timeout:       DefaultGenerationTimeout,
		logger:        slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	c.logger = c.logger.With("component", "answer")

	return c, nil
}

// Compose answers the query from retrieved evidence.
// The returned answer always carries the provenance of every evidence unit
// that entered the context, so callers can show which records back it.
func (c *Composer) Compose(ctx context.Context, query string) (*Answer, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	evidence, err := c.retriever.Retrieve(ctx, query, c.topK)
	if err != nil {
		return nil, err
	}

	if len(evidence) == 0 {
		c.logger.Info("no evidence for query", "query", query)
		return &Answer{Query: query, Text: NoMatchAnswer, NoMatch: true}, nil
	}

	answerCtx, err := AssembleContext(query, evidence, c.contextBudget)
	if err != nil {
		return nil, err
	}
	if answerCtx.Truncated {
		c.logger.Warn("evidence context truncated",
			"query", query, "budget", c.contextBudget, "unitsKept", len(answerCtx.Provenance))
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generator.Generate(genCtx, systemPrompt, renderPrompt(answerCtx.Text, query))
	if err != nil {
		c.logger.Error("generation failed", "query", query, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	ungrounded := ungroundedNames(text, answerCtx.Text, c.knownNames)
	if len(ungrounded) > 0 {
		c.logger.Warn("answer mentions employees outside the evidence context",
			"query", query, "names", ungrounded)
	}

	return &Answer{
		Query:           query,
		Text:            text,
		Truncated:       answerCtx.Truncated,
		Provenance:      answerCtx.Provenance,
		UngroundedNames: ungrounded,
	}, nil
}
