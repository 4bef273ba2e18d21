package answer

import (
	"strings"
	"testing"

	"github.com/poiesic/staffsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evidence(record core.RecordID, name, detail, text string, score float32) core.EvidenceUnit {
	u := core.RetrievableUnit{
		Type:         core.UnitTypeSkill,
		SourceRecord: record,
		RecordName:   name,
		Detail:       detail,
		Text:         text,
	}
	u.ID = core.UnitIDFromContent(u.Key() + "\n" + text)
	return core.EvidenceUnit{Unit: u, Score: score}
}

func TestAssembleContextJoinsInOrder(t *testing.T) {
	set := core.EvidenceSet{
		evidence(1, "Ana", "Go", "Employee Ana has expertise in Go.", 0.9),
		evidence(2, "Marcus", "SQL", "Employee Marcus has expertise in SQL.", 0.7),
	}

	ctx, err := AssembleContext("who knows Go", set, DefaultContextBudget)
	require.NoError(t, err)

	expected := set[0].Unit.Text + "\n\n" + set[1].Unit.Text
	assert.Equal(t, expected, ctx.Text)
	assert.False(t, ctx.Truncated)
	require.Len(t, ctx.Provenance, 2)
	assert.Equal(t, set[0].Unit.ID, ctx.Provenance[0].Unit)
	assert.Equal(t, "Ana", ctx.Provenance[0].RecordName)
	assert.InDelta(t, 0.9, float64(ctx.Provenance[0].Score), 1e-6)
}

func TestAssembleContextDropsWholeUnits(t *testing.T) {
	set := core.EvidenceSet{
		evidence(1, "Ana", "Go", strings.Repeat("a", 50), 0.9),
		evidence(2, "Marcus", "SQL", strings.Repeat("b", 50), 0.8),
		evidence(3, "Priya", "Java", strings.Repeat("c", 50), 0.7),
	}

	// Budget fits the first two units plus separator but not the third
	ctx, err := AssembleContext("q", set, 110)
	require.NoError(t, err)

	assert.True(t, ctx.Truncated)
	assert.Len(t, ctx.Provenance, 2)
	assert.NotContains(t, ctx.Text, "c")
}

func TestAssembleContextTruncatesOversizedFirstUnit(t *testing.T) {
	set := core.EvidenceSet{
		evidence(1, "Ana", "Go", strings.Repeat("x", 200), 0.9),
	}

	ctx, err := AssembleContext("q", set, 100)
	require.NoError(t, err)

	assert.True(t, ctx.Truncated)
	assert.Len(t, []rune(ctx.Text), 100)
	assert.Len(t, ctx.Provenance, 1)
	assert.False(t, ctx.Empty())
}

func TestAssembleContextEmptyEvidence(t *testing.T) {
	ctx, err := AssembleContext("q", nil, DefaultContextBudget)
	require.NoError(t, err)
	assert.True(t, ctx.Empty())
	assert.Empty(t, ctx.Text)
	assert.False(t, ctx.Truncated)
}

func TestAssembleContextInvalidBudget(t *testing.T) {
	_, err := AssembleContext("q", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidBudget)
}

func TestAssembleContextRuneBudget(t *testing.T) {
	// Multibyte text must be measured in runes, not bytes
	text := strings.Repeat("é", 40)
	set := core.EvidenceSet{evidence(1, "Ana", "Go", text, 0.9)}

	ctx, err := AssembleContext("q", set, 40)
	require.NoError(t, err)
	assert.False(t, ctx.Truncated)
	assert.Equal(t, text, ctx.Text)
}
