package analysis

import (
	"lucidlog-backend/domain/core/entities"
)

// Composite confidence weights. Frequency and correlation dominate;
// sample size only tempers small snapshots.
const (
	weightFrequency   = 0.4
	weightCorrelation = 0.4
	weightSampleSize  = 0.2
)

// scoreConfidence computes the composite confidence for content-based
// patterns. Timing patterns and lucidity triggers use their own formulas;
// suggestion-service candidates pass their confidence through clamped.
func scoreConfidence(occurrences, snapshotSize int, correlation entities.Correlation, opts Options) float64 {
	if snapshotSize == 0 {
		return 0
	}

	frequencyScore := float64(occurrences) / float64(snapshotSize)
	if frequencyScore > 1 {
		frequencyScore = 1
	}

	sampleSizeScore := float64(snapshotSize) / float64(opts.SampleSizeDivisor)
	if sampleSizeScore > 1 {
		sampleSizeScore = 1
	}

	return entities.Clamp01(
		weightFrequency*frequencyScore +
			weightCorrelation*correlation.Strength +
			weightSampleSize*sampleSizeScore,
	)
}
