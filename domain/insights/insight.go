// Package insights derives presentation-facing advice from persisted
// patterns. Insights are computed at read time and never stored.
package insights

import (
	"fmt"

	"lucidlog-backend/domain/core/entities"
)

// Severity ranks how strongly a pattern should be surfaced to the user
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// PatternInsight is the derived, read-time view of an active pattern
type PatternInsight struct {
	Severity       Severity `json:"severity"`
	Actionable     bool     `json:"actionable"`
	Recommendation string   `json:"recommendation"`
}

// Derive computes the insight for a pattern. Inactive patterns still get
// one; the caller decides whether to show them.
func Derive(p *entities.Pattern) PatternInsight {
	return PatternInsight{
		Severity:       severityOf(p),
		Actionable:     actionable(p),
		Recommendation: recommend(p),
	}
}

func severityOf(p *entities.Pattern) Severity {
	switch {
	case p.Confidence() >= 0.8 && p.Frequency() >= 5:
		return SeverityHigh
	case p.Confidence() >= 0.6:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// actionable means there is a concrete life-context tag the user could act
// on; a "general" correlation gives them nothing to change.
func actionable(p *entities.Pattern) bool {
	c := p.Correlation()
	return c.Strength >= 0.4 && c.EventType != "" && c.EventType != "general"
}

func recommend(p *entities.Pattern) string {
	c := p.Correlation()

	switch p.Type() {
	case entities.PatternLucidityTrigger:
		return "Note the listed triggers before sleep; they precede your clearest entries."
	case entities.PatternTiming:
		return fmt.Sprintf("%s clusters on a particular day; consider what that day holds for you.", p.Name())
	case entities.PatternThemeEvolution:
		return fmt.Sprintf("The theme behind %q is shifting; reread recent entries to see where it is heading.", p.Name())
	}

	if actionable(p) {
		return fmt.Sprintf("%s tends to appear alongside %q; journaling about that context may clarify the connection.", p.Name(), c.EventType)
	}
	return fmt.Sprintf("Keep logging entries; %s is recurring but not yet tied to a clear context.", p.Name())
}
