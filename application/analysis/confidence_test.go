package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lucidlog-backend/domain/core/entities"
)

func TestScoreConfidence_Composite(t *testing.T) {
	opts := DefaultOptions()
	corr := entities.Correlation{EventType: "work-stress", Strength: 1.0}

	// 0.4*(4/5) + 0.4*1.0 + 0.2*(5/20)
	got := scoreConfidence(4, 5, corr, opts)
	assert.InDelta(t, 0.77, got, 1e-9)
}

func TestScoreConfidence_SampleSizeSaturates(t *testing.T) {
	opts := DefaultOptions()
	corr := entities.Correlation{Strength: 0}

	// 40 entries saturate the sample-size component at 1.
	got := scoreConfidence(40, 40, corr, opts)
	assert.InDelta(t, 0.4+0.2, got, 1e-9)
}

func TestScoreConfidence_EmptySnapshot(t *testing.T) {
	assert.Zero(t, scoreConfidence(0, 0, entities.Correlation{}, DefaultOptions()))
}

func TestScoreConfidence_NeverExceedsOne(t *testing.T) {
	opts := DefaultOptions()
	corr := entities.Correlation{Strength: 5.0} // out-of-range input

	got := scoreConfidence(100, 20, corr, opts)
	assert.LessOrEqual(t, got, 1.0)
	assert.GreaterOrEqual(t, got, 0.0)
}
