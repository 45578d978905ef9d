// Package analysis is the pattern-detection engine. It consumes an
// immutable, chronologically ascending snapshot of journal entries and
// produces ranked patterns: recurring symbols, emotional cycles,
// day-of-week timing effects, evolving themes, and lucidity triggers,
// optionally merged with suggestions from a generative-text collaborator.
package analysis

import "time"

// Options holds every tunable threshold the engine uses. The zero value
// is not usable; start from DefaultOptions.
type Options struct {
	// MinEntries is the snapshot size below which a run returns no
	// patterns at all.
	MinEntries int

	// MinOccurrences and MinRelativeFrequency gate the frequency
	// analyzer: a value must appear in at least MinOccurrences entries
	// and in at least MinRelativeFrequency of the snapshot.
	MinOccurrences       int
	MinRelativeFrequency float64

	// MinRelatedCount is how many contributing entries a co-occurring
	// value needs before it enters a related set.
	MinRelatedCount int

	// TimingDeviation is the relative deviation from the per-day average
	// a weekday bucket must exceed; TimingMinCount is its floor.
	// TimingConfidenceCap keeps timing confidence below content-based
	// confidence, since timing is weaker evidence.
	TimingDeviation     float64
	TimingMinCount      int
	TimingConfidenceCap float64

	// LucidityThreshold is the 0-10 lucidity score from which an entry
	// counts as high-clarity; LucidityMinEntries is how many such
	// entries a trigger pattern needs. LucidityConfidenceCap bounds the
	// trigger confidence the same way the timing cap does, but the two
	// are tuned independently.
	LucidityThreshold     int
	LucidityMinEntries    int
	LucidityConfidenceCap float64

	// EvolutionMinDelta and EvolutionMinRelativeChange gate the theme
	// evolution analyzer: absolute count change between window halves
	// and change relative to the early half.
	EvolutionMinDelta          int
	EvolutionMinRelativeChange float64

	// SuggestionMinEntries is the snapshot size from which the external
	// suggestion service is consulted; SuggestionTimeout bounds the call.
	SuggestionMinEntries int
	SuggestionTimeout    time.Duration

	// SampleSizeDivisor normalizes the sample-size component of the
	// composite confidence score.
	SampleSizeDivisor int

	// MaxPatterns truncates the final ranked result.
	MaxPatterns int

	// MaxSummarySymbols/Emotions/Themes bound the per-entry digest sent
	// to the suggestion service.
	MaxSummarySymbols  int
	MaxSummaryEmotions int
	MaxSummaryThemes   int
}

// DefaultOptions returns the production thresholds
func DefaultOptions() Options {
	return Options{
		MinEntries:                 3,
		MinOccurrences:             3,
		MinRelativeFrequency:       0.2,
		MinRelatedCount:            2,
		TimingDeviation:            0.5,
		TimingMinCount:             3,
		TimingConfidenceCap:        0.9,
		LucidityThreshold:          7,
		LucidityMinEntries:         2,
		LucidityConfidenceCap:      0.9,
		EvolutionMinDelta:          2,
		EvolutionMinRelativeChange: 0.5,
		SuggestionMinEntries:       5,
		SuggestionTimeout:          10 * time.Second,
		SampleSizeDivisor:          20,
		MaxPatterns:                10,
		MaxSummarySymbols:          5,
		MaxSummaryEmotions:         3,
		MaxSummaryThemes:           3,
	}
}
