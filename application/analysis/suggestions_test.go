package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/core/entities"
)

func TestMergeCandidates_MapsCategories(t *testing.T) {
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0)}, {ts: day(1)}, {ts: day(2)}, {ts: day(3)}, {ts: day(4)},
	})

	candidates := []ports.PatternCandidate{
		{Category: "symbol", Name: "s", Confidence: 0.5, Frequency: 2},
		{Category: "emotion", Name: "e", Confidence: 0.5, Frequency: 2},
		{Category: "timing", Name: "t", Confidence: 0.5, Frequency: 2},
		{Category: "theme", Name: "th", Confidence: 0.5, Frequency: 2},
		{Category: "stress", Name: "st", Confidence: 0.5, Frequency: 2},
		{Category: "seasonal", Name: "se", Confidence: 0.5, Frequency: 2},
		{Category: "something-new", Name: "x", Confidence: 0.5, Frequency: 2},
	}

	patterns := mergeCandidates("user-1", candidates, snapshot, 90)
	require.Len(t, patterns, 7)

	wantTypes := []entities.PatternType{
		entities.PatternSymbolFrequency,
		entities.PatternEmotionalCycle,
		entities.PatternTiming,
		entities.PatternThemeEvolution,
		entities.PatternStressResponse,
		entities.PatternSeasonal,
		entities.PatternSymbolFrequency, // unknown category falls back
	}
	for i, p := range patterns {
		assert.Equal(t, wantTypes[i], p.Type(), "candidate %d", i)
	}
}

func TestMergeCandidates_ClampsOutOfRangeFigures(t *testing.T) {
	snapshot := buildSnapshot(t, []entrySpec{
		{ts: day(0)}, {ts: day(1)}, {ts: day(2)},
	})

	candidates := []ports.PatternCandidate{
		{Category: "symbol", Name: "wild", Confidence: 7.5, Frequency: 99},
		{Category: "symbol", Name: "negative", Confidence: -2, Frequency: -4},
	}

	patterns := mergeCandidates("user-1", candidates, snapshot, 30)
	require.Len(t, patterns, 2)

	wild := patterns[0]
	assert.Equal(t, 1.0, wild.Confidence())
	assert.Equal(t, len(snapshot), wild.Frequency())
	assert.Equal(t, day(0), wild.FirstOccurrence())
	assert.Equal(t, day(2), wild.LastOccurrence())

	negative := patterns[1]
	assert.Equal(t, 0.0, negative.Confidence())
	assert.Equal(t, 0, negative.Frequency())
}

func TestMergeCandidates_SkipsEmptyNames(t *testing.T) {
	snapshot := buildSnapshot(t, []entrySpec{{ts: day(0)}})

	candidates := []ports.PatternCandidate{
		{Category: "symbol", Name: "", Confidence: 0.9},
		{Category: "symbol", Name: "kept", Confidence: 0.9},
	}

	patterns := mergeCandidates("user-1", candidates, snapshot, 30)
	require.Len(t, patterns, 1)
	assert.Equal(t, "kept", patterns[0].Name())
}

func TestMergeCandidates_EmptySnapshot(t *testing.T) {
	candidates := []ports.PatternCandidate{{Category: "symbol", Name: "x"}}
	assert.Nil(t, mergeCandidates("user-1", candidates, nil, 30))
}

func TestSummarizeEntries_BoundsDigest(t *testing.T) {
	opts := DefaultOptions()

	snapshot := buildSnapshot(t, []entrySpec{
		{
			ts:       day(0),
			symbols:  []string{"a", "b", "c", "d", "e", "f", "g"},
			emotions: []string{"x", "y", "z", "w"},
			themes:   []string{"t1", "t2", "t3", "t4"},
		},
	})

	summaries := summarizeEntries(snapshot, opts)

	require.Len(t, summaries, 1)
	assert.Len(t, summaries[0].Symbols, opts.MaxSummarySymbols)
	assert.Len(t, summaries[0].Emotions, opts.MaxSummaryEmotions)
	assert.Len(t, summaries[0].Themes, opts.MaxSummaryThemes)
	assert.Equal(t, "test entry", summaries[0].Title)
	assert.Equal(t, day(0), summaries[0].Date)
}
