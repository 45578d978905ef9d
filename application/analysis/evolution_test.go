package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/entities"
)

func TestThemeEvolutionAnalyzer_IntensifyingTheme(t *testing.T) {
	analyzer := NewThemeEvolutionAnalyzer(DefaultOptions())

	// "exams" appears once in the early half, four times in the late half.
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), themes: []string{"exams"}},
		{ts: day(1), themes: []string{"travel"}},
		{ts: day(2), themes: []string{"travel"}},
		{ts: day(3), themes: []string{"travel"}},
		{ts: day(4), themes: []string{"exams"}},
		{ts: day(5), themes: []string{"exams"}},
		{ts: day(6), themes: []string{"exams"}},
		{ts: day(7), themes: []string{"exams"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 30)

	exams := findPattern(patterns, "Evolving Theme: exams")
	require.NotNil(t, exams)
	assert.Equal(t, entities.PatternThemeEvolution, exams.Type())
	assert.Equal(t, 5, exams.Frequency())
	assert.Contains(t, exams.Description(), "intensifying")
	assert.Equal(t, []string{"exams"}, exams.RelatedThemes())
	assert.Equal(t, day(0), exams.FirstOccurrence())
	assert.Equal(t, day(7), exams.LastOccurrence())

	// "travel" shifts by exactly 3 (3 early, 0 late) and qualifies too.
	travel := findPattern(patterns, "Evolving Theme: travel")
	require.NotNil(t, travel)
	assert.Contains(t, travel.Description(), "fading")
}

func TestThemeEvolutionAnalyzer_NewThemeQualifies(t *testing.T) {
	analyzer := NewThemeEvolutionAnalyzer(DefaultOptions())

	// A theme absent from the early half uses a base of one entry.
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0)},
		{ts: day(1)},
		{ts: day(2), themes: []string{"flying"}},
		{ts: day(3), themes: []string{"flying"}},
	})

	patterns := analyzer.Analyze("user-1", snapshot, 30)

	flying := findPattern(patterns, "Evolving Theme: flying")
	require.NotNil(t, flying)
	assert.Contains(t, strings.ToLower(flying.Description()), "intensifying")
}

func TestThemeEvolutionAnalyzer_SmallDeltaIgnored(t *testing.T) {
	analyzer := NewThemeEvolutionAnalyzer(DefaultOptions())

	// Delta of one entry never qualifies.
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0), themes: []string{"water"}},
		{ts: day(1)},
		{ts: day(2), themes: []string{"water"}},
		{ts: day(3), themes: []string{"water"}},
	})

	assert.Empty(t, analyzer.Analyze("user-1", snapshot, 30))
}

func TestThemeEvolutionAnalyzer_RelativeChangeFloor(t *testing.T) {
	analyzer := NewThemeEvolutionAnalyzer(DefaultOptions())

	// 5 early, 7 late: delta 2 but relative change 2/5 = 0.4, below 0.5.
	var specs []entrySpec
	for i := 0; i < 5; i++ {
		specs = append(specs, entrySpec{ts: day(i), themes: []string{"work"}})
	}
	specs = append(specs, entrySpec{ts: day(5)})
	for i := 0; i < 7; i++ {
		specs = append(specs, entrySpec{ts: day(6 + i), themes: []string{"work"}})
	}
	snapshot := buildSnapshot(t, specs)

	assert.Empty(t, analyzer.Analyze("user-1", snapshot, 30))
}
