package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/entities"
)

func rankedPattern(t *testing.T, patternType entities.PatternType, name string, confidence float64) *entities.Pattern {
	t.Helper()
	p, err := entities.NewPattern("user-1", patternType, name, "desc")
	require.NoError(t, err)
	p.SetConfidence(confidence)
	return p
}

func TestDedupeAndRank_KeepsFirstDuplicate(t *testing.T) {
	local := rankedPattern(t, entities.PatternSymbolFrequency, "Recurring Symbol: water", 0.8)
	suggested := rankedPattern(t, entities.PatternSymbolFrequency, "Recurring Symbol: water", 0.95)

	result := dedupeAndRank([]*entities.Pattern{local, suggested}, 10)

	require.Len(t, result, 1)
	assert.Same(t, local, result[0])
	assert.InDelta(t, 0.8, result[0].Confidence(), 1e-9)
}

func TestDedupeAndRank_SameNameDifferentTypeBothSurvive(t *testing.T) {
	a := rankedPattern(t, entities.PatternSymbolFrequency, "water", 0.5)
	b := rankedPattern(t, entities.PatternThemeEvolution, "water", 0.5)

	result := dedupeAndRank([]*entities.Pattern{a, b}, 10)
	assert.Len(t, result, 2)
}

func TestDedupeAndRank_SortsByConfidenceDescending(t *testing.T) {
	low := rankedPattern(t, entities.PatternSymbolFrequency, "low", 0.2)
	high := rankedPattern(t, entities.PatternEmotionalCycle, "high", 0.9)
	mid := rankedPattern(t, entities.PatternTiming, "mid", 0.5)

	result := dedupeAndRank([]*entities.Pattern{low, high, mid}, 10)

	require.Len(t, result, 3)
	assert.Equal(t, "high", result[0].Name())
	assert.Equal(t, "mid", result[1].Name())
	assert.Equal(t, "low", result[2].Name())
}

func TestDedupeAndRank_TieBreaksByNameThenType(t *testing.T) {
	b := rankedPattern(t, entities.PatternSymbolFrequency, "beta", 0.5)
	a := rankedPattern(t, entities.PatternSymbolFrequency, "alpha", 0.5)
	sameNameEarlierType := rankedPattern(t, entities.PatternEmotionalCycle, "alpha", 0.5)

	result := dedupeAndRank([]*entities.Pattern{b, a, sameNameEarlierType}, 10)

	require.Len(t, result, 3)
	assert.Equal(t, entities.PatternEmotionalCycle, result[0].Type()) // EMOTIONAL_CYCLE < SYMBOL_FREQUENCY
	assert.Equal(t, "alpha", result[0].Name())
	assert.Equal(t, entities.PatternSymbolFrequency, result[1].Type())
	assert.Equal(t, "alpha", result[1].Name())
	assert.Equal(t, "beta", result[2].Name())
}

func TestDedupeAndRank_Truncates(t *testing.T) {
	var pool []*entities.Pattern
	for i := 0; i < 15; i++ {
		pool = append(pool, rankedPattern(t, entities.PatternSymbolFrequency, fmt.Sprintf("p%02d", i), float64(i)/20.0))
	}

	result := dedupeAndRank(pool, 10)

	require.Len(t, result, 10)
	assert.Equal(t, "p14", result[0].Name())
	assert.Equal(t, "p05", result[9].Name())
}

func TestDedupeAndRank_SkipsNil(t *testing.T) {
	p := rankedPattern(t, entities.PatternSymbolFrequency, "only", 0.4)
	result := dedupeAndRank([]*entities.Pattern{nil, p, nil}, 10)
	require.Len(t, result, 1)
	assert.Equal(t, "only", result[0].Name())
}
