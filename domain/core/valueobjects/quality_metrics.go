package valueobjects

// Metric bounds for self-reported entry quality scores.
const (
	MetricMin = 0
	MetricMax = 10
)

// QualityMetrics holds the self-reported 0-10 scores attached to an entry.
// Values outside the range are clamped at construction, never rejected:
// they come from historic client data we no longer control.
type QualityMetrics struct {
	sleepQuality int
	lucidity     int
	vividness    int
}

// NewQualityMetrics creates clamped quality metrics
func NewQualityMetrics(sleepQuality, lucidity, vividness int) QualityMetrics {
	return QualityMetrics{
		sleepQuality: clampMetric(sleepQuality),
		lucidity:     clampMetric(lucidity),
		vividness:    clampMetric(vividness),
	}
}

// SleepQuality returns the sleep quality score
func (m QualityMetrics) SleepQuality() int { return m.sleepQuality }

// Lucidity returns the lucidity score
func (m QualityMetrics) Lucidity() int { return m.lucidity }

// Vividness returns the vividness score
func (m QualityMetrics) Vividness() int { return m.vividness }

func clampMetric(v int) int {
	if v < MetricMin {
		return MetricMin
	}
	if v > MetricMax {
		return MetricMax
	}
	return v
}
