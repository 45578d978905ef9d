package analysis

import (
	"fmt"

	"lucidlog-backend/domain/core/entities"
)

// correlate finds the dominant self-reported context tag across the
// entries behind a candidate pattern. Entries without tags contribute
// nothing; a subset with no tags at all correlates weakly to "general".
func correlate(subset []*entities.Entry) entities.Correlation {
	if len(subset) == 0 {
		return generalCorrelation()
	}

	counts := make(map[string]int)
	for _, entry := range subset {
		for _, tag := range entry.ContextTags() {
			counts[tag]++
		}
	}
	if len(counts) == 0 {
		return generalCorrelation()
	}

	// Highest count wins; ties break to the lexicographically smallest
	// tag so repeated runs stay deterministic.
	var dominant string
	var dominantCount int
	for tag, count := range counts {
		if count > dominantCount || (count == dominantCount && (dominant == "" || tag < dominant)) {
			dominant = tag
			dominantCount = count
		}
	}

	strength := float64(dominantCount) / float64(len(subset))
	if strength > 1 {
		strength = 1
	}

	return entities.Correlation{
		EventType:   dominant,
		Strength:    strength,
		Description: fmt.Sprintf("%s association with %q (%d of %d entries)", strengthLabel(strength), dominant, dominantCount, len(subset)),
	}
}

func generalCorrelation() entities.Correlation {
	return entities.Correlation{
		EventType:   "general",
		Strength:    0.1,
		Description: "no dominant life context reported",
	}
}

// strengthLabel bands a strength into description text. The bands gate
// nothing; they only read better than raw floats.
func strengthLabel(strength float64) string {
	switch {
	case strength > 0.8:
		return "very strong"
	case strength > 0.6:
		return "strong"
	case strength > 0.4:
		return "moderate"
	default:
		return "weak"
	}
}
