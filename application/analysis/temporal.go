package analysis

import (
	"fmt"
	"math"
	"time"

	"lucidlog-backend/domain/core/entities"
)

// TemporalAnalyzer detects day-of-week timing anomalies: weekdays whose
// entry count deviates sharply from the per-day average.
type TemporalAnalyzer struct {
	opts Options
}

// NewTemporalAnalyzer creates a temporal analyzer
func NewTemporalAnalyzer(opts Options) *TemporalAnalyzer {
	return &TemporalAnalyzer{opts: opts}
}

// Analyze buckets the snapshot by weekday and emits a TIMING_PATTERN for
// every day whose count deviates from the average by more than the
// configured ratio. Confidence is capped below content-based patterns
// because timing alone is weaker evidence.
func (a *TemporalAnalyzer) Analyze(userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if len(snapshot) < a.opts.MinEntries {
		return nil
	}

	buckets := make(map[time.Weekday][]*entities.Entry, 7)
	for _, entry := range snapshot {
		day := entry.Timestamp().Weekday()
		buckets[day] = append(buckets[day], entry)
	}

	average := float64(len(snapshot)) / 7.0

	var patterns []*entities.Pattern
	// Iterate Sunday..Saturday so output order is deterministic.
	for day := time.Sunday; day <= time.Saturday; day++ {
		subset := buckets[day]
		count := len(subset)
		if count < a.opts.TimingMinCount {
			continue
		}

		deviation := math.Abs(float64(count)-average) / average
		if deviation <= a.opts.TimingDeviation {
			continue
		}

		confidence := deviation
		if confidence > a.opts.TimingConfidenceCap {
			confidence = a.opts.TimingConfidenceCap
		}

		pattern, err := entities.NewPattern(
			userID,
			entities.PatternTiming,
			fmt.Sprintf("%s Patterns", day),
			fmt.Sprintf("Entries cluster on %ss: %d against a %.1f per-day average", day, count, average),
		)
		if err != nil {
			continue
		}

		pattern.SetFrequency(count)
		pattern.SetConfidence(confidence)
		pattern.SetCorrelation(correlate(subset))
		pattern.SetTimeRangeDays(windowDays)
		pattern.SetOccurrenceRange(subset[0].Timestamp(), subset[len(subset)-1].Timestamp())
		pattern.SetInsight(fmt.Sprintf("You record noticeably more on %ss. Whatever that day holds for you is shaping what you bring to the journal.", day))

		patterns = append(patterns, pattern)
	}
	return patterns
}
