package analysis

import (
	"fmt"
	"sort"

	"lucidlog-backend/domain/core/entities"
)

// LucidityTriggerDetector finds elements that co-occur in high-clarity
// entries: candidate triggers worth noting before sleep.
type LucidityTriggerDetector struct {
	opts Options
}

// NewLucidityTriggerDetector creates a lucidity trigger detector
func NewLucidityTriggerDetector(opts Options) *LucidityTriggerDetector {
	return &LucidityTriggerDetector{opts: opts}
}

// Analyze filters the snapshot down to high-lucidity entries and, when at
// least two exist, emits a single LUCIDITY_TRIGGER pattern carrying the
// symbols, emotions, and themes shared by two or more of them.
func (d *LucidityTriggerDetector) Analyze(userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if len(snapshot) < d.opts.MinEntries {
		return nil
	}

	var lucid []*entities.Entry
	for _, entry := range snapshot {
		if entry.Metrics().Lucidity() >= d.opts.LucidityThreshold {
			lucid = append(lucid, entry)
		}
	}
	if len(lucid) < d.opts.LucidityMinEntries {
		return nil
	}

	symbols := sharedValues(lucid, kindSymbol)
	emotions := sharedValues(lucid, kindEmotion)
	themes := sharedValues(lucid, kindTheme)
	if len(symbols) == 0 && len(emotions) == 0 && len(themes) == 0 {
		return nil
	}

	confidence := 2.0 * float64(len(lucid)) / float64(len(snapshot))
	if confidence > d.opts.LucidityConfidenceCap {
		confidence = d.opts.LucidityConfidenceCap
	}

	pattern, err := entities.NewPattern(
		userID,
		entities.PatternLucidityTrigger,
		"Lucidity Triggers",
		fmt.Sprintf("%d of %d entries report high clarity and share recurring elements", len(lucid), len(snapshot)),
	)
	if err != nil {
		return nil
	}

	pattern.SetFrequency(len(lucid))
	pattern.SetConfidence(confidence)
	pattern.SetCorrelation(correlate(lucid))
	pattern.SetTimeRangeDays(windowDays)
	pattern.SetOccurrenceRange(lucid[0].Timestamp(), lucid[len(lucid)-1].Timestamp())
	pattern.SetRelatedSymbols(symbols)
	pattern.SetRelatedEmotions(emotions)
	pattern.SetRelatedThemes(themes)
	pattern.SetInsight("These elements keep showing up in your clearest entries. Holding one in mind before sleep is the classic way to invite that clarity back.")

	return []*entities.Pattern{pattern}
}

// sharedValues returns the values of one attribute kind appearing in at
// least two of the given entries, ranked by count descending then name
// ascending, bounded to the related-set cap.
func sharedValues(entries []*entities.Entry, kind attributeKind) []string {
	counts := make(map[string]int)
	for _, entry := range entries {
		for _, value := range uniqueValues(kind.values(entry)) {
			counts[value]++
		}
	}

	type valueCount struct {
		value string
		count int
	}
	var ranked []valueCount
	for value, count := range counts {
		if count >= 2 {
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
	values := make([]string, len(ranked))
	for i, rc := range ranked {
		values[i] = rc.value
	}
	return values
}
