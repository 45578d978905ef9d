package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelate_DominantTag(t *testing.T) {
	subset := buildSnapshot(t, []entrySpec{
		{ts: day(0), tags: []string{"work-stress"}},
		{ts: day(1), tags: []string{"work-stress"}},
		{ts: day(2), tags: []string{"travel"}},
		{ts: day(3), tags: []string{"work-stress"}},
	})

	corr := correlate(subset)

	assert.Equal(t, "work-stress", corr.EventType)
	assert.InDelta(t, 0.75, corr.Strength, 1e-9)
	assert.Contains(t, corr.Description, "work-stress")
	assert.Contains(t, corr.Description, "3 of 4")
}

func TestCorrelate_NoTags(t *testing.T) {
	subset := buildSnapshot(t, []entrySpec{
		{ts: day(0)},
		{ts: day(1)},
	})

	corr := correlate(subset)

	assert.Equal(t, "general", corr.EventType)
	assert.InDelta(t, 0.1, corr.Strength, 1e-9)
}

func TestCorrelate_EmptySubset(t *testing.T) {
	corr := correlate(nil)
	assert.Equal(t, "general", corr.EventType)
}

func TestCorrelate_TieBreaksLexicographically(t *testing.T) {
	subset := buildSnapshot(t, []entrySpec{
		{ts: day(0), tags: []string{"travel"}},
		{ts: day(1), tags: []string{"conflict"}},
	})

	corr := correlate(subset)
	assert.Equal(t, "conflict", corr.EventType)
}

func TestCorrelate_StrengthCappedAtOne(t *testing.T) {
	// An entry carrying the same tag twice could push the count past the
	// subset size; strength must stay within [0,1].
	subset := buildSnapshot(t, []entrySpec{
		{ts: day(0), tags: []string{"moving", "moving"}},
		{ts: day(1), tags: []string{"moving"}},
	})

	corr := correlate(subset)
	assert.LessOrEqual(t, corr.Strength, 1.0)
}

func TestStrengthLabel(t *testing.T) {
	assert.Equal(t, "very strong", strengthLabel(0.9))
	assert.Equal(t, "strong", strengthLabel(0.7))
	assert.Equal(t, "moderate", strengthLabel(0.5))
	assert.Equal(t, "weak", strengthLabel(0.3))
	assert.Equal(t, "weak", strengthLabel(0.4))
}
