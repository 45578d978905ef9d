package analysis

import (
	"fmt"
	"sort"

	"lucidlog-backend/domain/core/entities"
)

// attributeKind selects which categorical attribute of an entry is being
// counted. The frequency analyzer runs once per kind, independently.
type attributeKind int

const (
	kindSymbol attributeKind = iota
	kindEmotion
	kindTheme
)

func (k attributeKind) values(e *entities.Entry) []string {
	switch k {
	case kindSymbol:
		return e.Symbols()
	case kindEmotion:
		return e.Emotions()
	default:
		return e.Themes()
	}
}

func (k attributeKind) patternType() entities.PatternType {
	switch k {
	case kindSymbol:
		return entities.PatternSymbolFrequency
	case kindEmotion:
		return entities.PatternEmotionalCycle
	default:
		return entities.PatternThemeEvolution
	}
}

func (k attributeKind) patternName(value string) string {
	switch k {
	case kindSymbol:
		return fmt.Sprintf("Recurring Symbol: %s", value)
	case kindEmotion:
		return fmt.Sprintf("Emotional Pattern: %s", value)
	default:
		return fmt.Sprintf("Recurring Theme: %s", value)
	}
}

// FrequencyAnalyzer finds symbols, emotions, and themes that recur across
// enough of the snapshot to matter.
type FrequencyAnalyzer struct {
	opts Options
}

// NewFrequencyAnalyzer creates a frequency analyzer
func NewFrequencyAnalyzer(opts Options) *FrequencyAnalyzer {
	return &FrequencyAnalyzer{opts: opts}
}

// Analyze counts each unique attribute value once per entry (never per
// mention) and emits a pattern for every value clearing both the absolute
// and the relative threshold.
func (a *FrequencyAnalyzer) Analyze(userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if len(snapshot) < a.opts.MinEntries {
		return nil
	}

	var patterns []*entities.Pattern
	for _, kind := range []attributeKind{kindSymbol, kindEmotion, kindTheme} {
		patterns = append(patterns, a.analyzeKind(kind, userID, snapshot, windowDays)...)
	}
	return patterns
}

func (a *FrequencyAnalyzer) analyzeKind(kind attributeKind, userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	contributors := make(map[string][]*entities.Entry)
	for _, entry := range snapshot {
		for _, value := range uniqueValues(kind.values(entry)) {
			contributors[value] = append(contributors[value], entry)
		}
	}

	values := make([]string, 0, len(contributors))
	for value := range contributors {
		values = append(values, value)
	}
	sort.Strings(values)

	var patterns []*entities.Pattern
	for _, value := range values {
		subset := contributors[value]
		occurrences := len(subset)
		relative := float64(occurrences) / float64(len(snapshot))

		if occurrences < a.opts.MinOccurrences || relative < a.opts.MinRelativeFrequency {
			continue
		}

		correlation := correlate(subset)

		pattern, err := entities.NewPattern(
			userID,
			kind.patternType(),
			kind.patternName(value),
			fmt.Sprintf("%q appears in %d of %d entries (%.0f%%)", value, occurrences, len(snapshot), relative*100),
		)
		if err != nil {
			continue
		}

		pattern.SetFrequency(occurrences)
		pattern.SetConfidence(scoreConfidence(occurrences, len(snapshot), correlation, a.opts))
		pattern.SetCorrelation(correlation)
		pattern.SetTimeRangeDays(windowDays)
		// Snapshot order is chronological ascending, so the subset is too.
		pattern.SetOccurrenceRange(subset[0].Timestamp(), subset[len(subset)-1].Timestamp())
		pattern.SetInsight(meaningFor(kind, value))

		related := a.relatedValues(subset, kind, value)
		pattern.SetRelatedSymbols(related[kindSymbol])
		pattern.SetRelatedEmotions(related[kindEmotion])
		pattern.SetRelatedThemes(related[kindTheme])

		patterns = append(patterns, pattern)
	}
	return patterns
}

// relatedValues ranks, per attribute kind, the values co-occurring with
// the pattern's own value across its contributing entries. A co-occurring
// value needs MinRelatedCount contributing entries to qualify; the top
// five per kind survive (count descending, then name ascending).
func (a *FrequencyAnalyzer) relatedValues(subset []*entities.Entry, ownKind attributeKind, ownValue string) map[attributeKind][]string {
	related := make(map[attributeKind][]string, 3)

	for _, kind := range []attributeKind{kindSymbol, kindEmotion, kindTheme} {
		counts := make(map[string]int)
		for _, entry := range subset {
			for _, value := range uniqueValues(kind.values(entry)) {
				if kind == ownKind && value == ownValue {
					continue
				}
				counts[value]++
			}
		}

		type valueCount struct {
			value string
			count int
		}
		ranked := make([]valueCount, 0, len(counts))
		for value, count := range counts {
			if count >= a.opts.MinRelatedCount {
				ranked = append(ranked, valueCount{value, count})
			}
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].value < ranked[j].value
		})

		if len(ranked) > entities.MaxRelatedValues {
			ranked = ranked[:entities.MaxRelatedValues]
		}
		names := make([]string, len(ranked))
		for i, rc := range ranked {
			names[i] = rc.value
		}
		related[kind] = names
	}

	return related
}

// uniqueValues deduplicates an entry's attribute list while preserving
// first-seen order, so a value tagged twice still counts once per entry.
func uniqueValues(values []string) []string {
	if len(values) < 2 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
