package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/entities"
)

func TestFrequencyAnalyzer_RecurringSymbol(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), symbols: []string{"water"}, tags: []string{"work-stress"}},
		{ts: day(1), symbols: []string{"water", "door"}, tags: []string{"work-stress"}},
		{ts: day(2), symbols: []string{"door"}},
		{ts: day(3), symbols: []string{"water"}, tags: []string{"work-stress"}},
		{ts: day(4), symbols: []string{"water"}, tags: []string{"work-stress"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 90)

	water := findPattern(patterns, "Recurring Symbol: water")
	require.NotNil(t, water)

	assert.Equal(t, entities.PatternSymbolFrequency, water.Type())
	assert.Equal(t, 4, water.Frequency())
	// 0.4*(4/5) + 0.4*1.0 + 0.2*(5/20)
	assert.InDelta(t, 0.77, water.Confidence(), 1e-9)
	assert.Greater(t, water.Confidence(), 0.6)

	corr := water.Correlation()
	assert.Equal(t, "work-stress", corr.EventType)
	assert.InDelta(t, 1.0, corr.Strength, 1e-9)

	assert.Equal(t, day(0), water.FirstOccurrence())
	assert.Equal(t, day(4), water.LastOccurrence())
	assert.Equal(t, 90, water.TimeRangeDays())
}

func TestFrequencyAnalyzer_CountsOncePerEntry(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	// "water" tagged twice in one entry must still count as one occurrence.
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), symbols: []string{"water", "water"}},
		{ts: day(1), symbols: []string{"water"}},
		{ts: day(2), symbols: []string{"door"}},
		{ts: day(3), symbols: []string{"door"}},
		{ts: day(4), symbols: []string{"door"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 90)

	assert.Nil(t, findPattern(patterns, "Recurring Symbol: water"), "two occurrences must not clear the three-entry floor")

	door := findPattern(patterns, "Recurring Symbol: door")
	require.NotNil(t, door)
	assert.Equal(t, 3, door.Frequency())
}

func TestFrequencyAnalyzer_RelativeFrequencyFloor(t *testing.T) {
	opts := DefaultOptions()
	analyzer := NewFrequencyAnalyzer(opts)

	// 3 occurrences out of 20 entries is 15%, below the 20% floor.
	specs := make([]entrySpec, 20)
	for i := range specs {
		specs[i] = entrySpec{ts: day(i), symbols: []string{"filler"}}
	}
	specs[0].symbols = append(specs[0].symbols, "teeth")
	specs[1].symbols = append(specs[1].symbols, "teeth")
	specs[2].symbols = append(specs[2].symbols, "teeth")
	snapshot := buildSnapshot(t, specs)

	patterns := analyzer.Analyze("user-1", snapshot, 90)

	assert.Nil(t, findPattern(patterns, "Recurring Symbol: teeth"))
	assert.NotNil(t, findPattern(patterns, "Recurring Symbol: filler"))
}

func TestFrequencyAnalyzer_EmotionsAndThemes(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), emotions: []string{"fear"}, themes: []string{"being chased"}},
		{ts: day(1), emotions: []string{"fear"}, themes: []string{"being chased"}},
		{ts: day(2), emotions: []string{"fear"}, themes: []string{"being chased"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 30)

	fear := findPattern(patterns, "Emotional Pattern: fear")
	require.NotNil(t, fear)
	assert.Equal(t, entities.PatternEmotionalCycle, fear.Type())

	chased := findPattern(patterns, "Recurring Theme: being chased")
	require.NotNil(t, chased)
	assert.Equal(t, entities.PatternThemeEvolution, chased.Type())
}

func TestFrequencyAnalyzer_RelatedValues(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), symbols: []string{"water", "boat"}, emotions: []string{"fear"}},
		{ts: day(1), symbols: []string{"water", "boat"}, emotions: []string{"fear"}},
		{ts: day(2), symbols: []string{"water"}, emotions: []string{"joy"}},
		{ts: day(3), symbols: []string{"water"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 90)

	water := findPattern(patterns, "Recurring Symbol: water")
	require.NotNil(t, water)

	// "boat" co-occurs twice, "joy" only once; the pattern's own value
	// never appears in its related set.
	assert.Equal(t, []string{"boat"}, water.RelatedSymbols())
	assert.Equal(t, []string{"fear"}, water.RelatedEmotions())
	assert.Empty(t, water.RelatedThemes())
}

func TestFrequencyAnalyzer_BelowMinEntries(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), symbols: []string{"water"}},
		{ts: day(1), symbols: []string{"water"}},
	})

	assert.Nil(t, analyzer.Analyze("user-1", snapshot, 90))
}

func TestFrequencyAnalyzer_DeterministicOrder(t *testing.T) {
	analyzer := NewFrequencyAnalyzer(DefaultOptions())

	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), symbols: []string{"water", "door", "bridge"}},
		{ts: day(1), symbols: []string{"water", "door", "bridge"}},
		{ts: day(2), symbols: []string{"water", "door", "bridge"}},
	})

	first := analyzer.Analyze("user-1", snapshot, 90)
	second := analyzer.Analyze("user-1", snapshot, 90)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name(), second[i].Name())
		assert.Equal(t, first[i].Confidence(), second[i].Confidence())
	}
}
