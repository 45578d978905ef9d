package analysis

import (
	"lucidlog-backend/application/ports"
	"lucidlog-backend/domain/core/entities"
)

// categoryToType maps the suggestion service's coarse category strings
// onto the closed pattern taxonomy. Unrecognized categories fall back to
// SYMBOL_FREQUENCY rather than entering the pool unclassified.
var categoryToType = map[string]entities.PatternType{
	"symbol":   entities.PatternSymbolFrequency,
	"emotion":  entities.PatternEmotionalCycle,
	"timing":   entities.PatternTiming,
	"theme":    entities.PatternThemeEvolution,
	"stress":   entities.PatternStressResponse,
	"seasonal": entities.PatternSeasonal,
}

// summarizeEntries builds the bounded per-entry digest sent to the
// suggestion service: enough for pattern hints, small enough to keep the
// prompt within budget.
func summarizeEntries(snapshot []*entities.Entry, opts Options) []ports.EntrySummary {
	summaries := make([]ports.EntrySummary, 0, len(snapshot))
	for _, entry := range snapshot {
		summaries = append(summaries, ports.EntrySummary{
			Date:     entry.Timestamp(),
			Title:    entry.Title(),
			Symbols:  truncate(entry.Symbols(), opts.MaxSummarySymbols),
			Emotions: truncate(entry.Emotions(), opts.MaxSummaryEmotions),
			Themes:   truncate(entry.Themes(), opts.MaxSummaryThemes),
		})
	}
	return summaries
}

// mergeCandidates converts suggestion-service candidates into patterns.
// Candidate confidence, frequency, and insight text pass through without
// re-validation; the engine only clamps them into legal ranges and maps
// the category into the closed type set.
func mergeCandidates(userID string, candidates []ports.PatternCandidate, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if len(snapshot) == 0 {
		return nil
	}

	var patterns []*entities.Pattern
	for _, c := range candidates {
		if c.Name == "" {
			continue
		}

		patternType, ok := categoryToType[c.Category]
		if !ok {
			patternType = entities.PatternSymbolFrequency
		}

		pattern, err := entities.NewPattern(userID, patternType, c.Name, c.Description)
		if err != nil {
			continue
		}

		frequency := c.Frequency
		if frequency > len(snapshot) {
			frequency = len(snapshot)
		}
		pattern.SetFrequency(frequency)
		pattern.SetConfidence(c.Confidence) // setter clamps to [0,1]
		pattern.SetInsight(c.Insight)
		pattern.SetTimeRangeDays(windowDays)
		// The service reasons over the whole digest, so anchor the
		// occurrence range to the snapshot bounds.
		pattern.SetOccurrenceRange(snapshot[0].Timestamp(), snapshot[len(snapshot)-1].Timestamp())
		pattern.SetCorrelation(generalCorrelation())

		patterns = append(patterns, pattern)
	}
	return patterns
}

func truncate(values []string, max int) []string {
	if len(values) > max {
		return values[:max]
	}
	return values
}
