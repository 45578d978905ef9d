package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/entities"
)

func TestTemporalAnalyzer_WeekdayCluster(t *testing.T) {
	analyzer := NewTemporalAnalyzer(DefaultOptions())

	// 5 Mondays out of 14 entries; the rest spread thin across the week.
	specs := []entrySpec{
		{ts: day(0)}, {ts: day(7)}, {ts: day(14)}, {ts: day(21)}, {ts: day(28)},
		{ts: day(1)}, {ts: day(8)},
		{ts: day(2)}, {ts: day(9)},
		{ts: day(3)}, {ts: day(10)},
		{ts: day(4)},
		{ts: day(5)},
		{ts: day(6)},
	}
	snapshot := buildSnapshot(t, specs)

	patterns := analyzer.Analyze("user-1", snapshot, 35)

	require.Len(t, patterns, 1)
	monday := patterns[0]
	assert.Equal(t, "Monday Patterns", monday.Name())
	assert.Equal(t, entities.PatternTiming, monday.Type())
	assert.Equal(t, 5, monday.Frequency())

	// deviation = |5 - 2| / 2 = 1.5, capped at 0.9
	assert.InDelta(t, 0.9, monday.Confidence(), 1e-9)
	assert.Equal(t, day(0), monday.FirstOccurrence())
	assert.Equal(t, day(28), monday.LastOccurrence())
}

func TestTemporalAnalyzer_UniformDistribution(t *testing.T) {
	analyzer := NewTemporalAnalyzer(DefaultOptions())

	// Three entries on every weekday: count equals threshold but the
	// deviation from the per-day average is zero.
	var specs []entrySpec
	for week := 0; week < 3; week++ {
		for d := 0; d < 7; d++ {
			specs = append(specs, entrySpec{ts: day(week*7 + d)})
		}
	}
	snapshot := buildSnapshot(t, specs)

	assert.Empty(t, analyzer.Analyze("user-1", snapshot, 30))
}

func TestTemporalAnalyzer_MinCountFloor(t *testing.T) {
	analyzer := NewTemporalAnalyzer(DefaultOptions())

	// Two Fridays out of three entries deviate hugely but two entries
	// cannot clear the count floor.
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(4)},
		{ts: day(11)},
		{ts: day(1)},
	})

	assert.Empty(t, analyzer.Analyze("user-1", snapshot, 30))
}

func TestTemporalAnalyzer_ConfidenceBelowCapWhenDeviationSmall(t *testing.T) {
	analyzer := NewTemporalAnalyzer(DefaultOptions())

	// 4 Tuesdays out of 14 entries: deviation = |4-2|/2 = 1.0, still capped.
	// Use 3 Tuesdays out of 14 instead: deviation = 0.5, not above threshold.
	specs := []entrySpec{
		{ts: day(1)}, {ts: day(8)}, {ts: day(15)},
	}
	for i := 0; i < 11; i++ {
		specs = append(specs, entrySpec{ts: day(2 + (i%6)*7 + (i/6))})
	}
	snapshot := buildSnapshot(t, specs)

	patterns := analyzer.Analyze("user-1", snapshot, 45)
	assert.Nil(t, findPattern(patterns, "Tuesday Patterns"), "deviation equal to the threshold must not qualify")
}
