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
	"strings"

	"github.com/poiesic/staffsearch/core"
)

// DefaultContextBudget is the default evidence context size in runes,
// sized to fit the generation model's context window alongside the
// system prompt and request.
const DefaultContextBudget = 4096

// unitSeparator joins evidence unit texts in the assembled context.
const unitSeparator = "\n\n"

// AssembleContext joins evidence texts into a single context block, in
// evidence order, within the rune budget. Units that do not fit are dropped
// whole; a unit is never split mid-text except for the first unit, which is
// truncated rather than producing an empty context. Provenance records which
// units made it in.
func AssembleContext(query string, evidence core.EvidenceSet, budget int) (core.AnswerContext, error) {
	if budget < 1 {
		return core.AnswerContext{}, ErrInvalidBudget
	}

	ctx := core.AnswerContext{Query: query}
	if len(evidence) == 0 {
		return ctx, nil
	}

	var b strings.Builder
	used := 0
	for i, hit := range evidence {
		text := hit.Unit.Text
		cost := len([]rune(text))
		if i > 0 {
			cost += len([]rune(unitSeparator))
		}

		if used+cost > budget {
			if i == 0 {
				// A single oversized unit is better truncated than absent
				runes := []rune(text)
				b.WriteString(string(runes[:budget]))
				ctx.Provenance = append(ctx.Provenance, provenanceOf(hit))
			}
			ctx.Truncated = true
			break
		}

		if i > 0 {
			b.WriteString(unitSeparator)
		}
		b.WriteString(text)
		used += cost
		ctx.Provenance = append(ctx.Provenance, provenanceOf(hit))
	}

	ctx.Text = b.String()
	return ctx, nil
}

// provenanceOf records where an evidence unit came from.
func provenanceOf(hit core.EvidenceUnit) core.Provenance {
	return core.Provenance{
		Unit:         hit.Unit.ID,
		SourceRecord: hit.Unit.SourceRecord,
		RecordName:   hit.Unit.RecordName,
		Type:         hit.Unit.Type,
		Detail:       hit.Unit.Detail,
		Score:        hit.Score,
	}
}
