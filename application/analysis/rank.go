package analysis

import (
	"sort"

	"lucidlog-backend/domain/core/entities"
)

// dedupeAndRank merges the pooled candidates into the final result:
// duplicates by (type, name) collapse to the first occurrence, the rest
// sort by confidence descending, and the list truncates to maxPatterns.
//
// Equal confidence breaks ties by name ascending, then type ascending.
// The tie-break is arbitrary but fixed: re-running on the same snapshot
// must yield the same order.
func dedupeAndRank(pool []*entities.Pattern, maxPatterns int) []*entities.Pattern {
	seen := make(map[string]struct{}, len(pool))
	result := make([]*entities.Pattern, 0, len(pool))
	for _, pattern := range pool {
		if pattern == nil {
			continue
		}
		key := pattern.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, pattern)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Confidence() != result[j].Confidence() {
			return result[i].Confidence() > result[j].Confidence()
		}
		if result[i].Name() != result[j].Name() {
			return result[i].Name() < result[j].Name()
		}
		return result[i].Type() < result[j].Type()
	})

	if len(result) > maxPatterns {
		result = result[:maxPatterns]
	}
	return result
}
