package entities

import (
	"fmt"
	"time"

	pkgerrors "lucidlog-backend/pkg/errors"
)

// PatternType classifies a detected pattern. The set is closed: values
// arriving from outside (the suggestion service, the API) go through
// ParsePatternType so nothing else can enter the pool.
type PatternType string

const (
	PatternSymbolFrequency PatternType = "SYMBOL_FREQUENCY"
	PatternEmotionalCycle  PatternType = "EMOTIONAL_CYCLE"
	PatternTiming          PatternType = "TIMING_PATTERN"
	PatternThemeEvolution  PatternType = "THEME_EVOLUTION"
	PatternLucidityTrigger PatternType = "LUCIDITY_TRIGGER"
	PatternStressResponse  PatternType = "STRESS_RESPONSE"
	PatternSeasonal        PatternType = "SEASONAL_PATTERN"
)

// MaxRelatedValues bounds each related-attribute set on a pattern.
const MaxRelatedValues = 5

// ParsePatternType validates a raw pattern type string
func ParsePatternType(s string) (PatternType, error) {
	switch PatternType(s) {
	case PatternSymbolFrequency, PatternEmotionalCycle, PatternTiming,
		PatternThemeEvolution, PatternLucidityTrigger, PatternStressResponse,
		PatternSeasonal:
		return PatternType(s), nil
	}
	return "", fmt.Errorf("unknown pattern type %q", s)
}

// Correlation links a pattern's contributing entries to the dominant
// self-reported context tag.
type Correlation struct {
	EventType   string  `json:"eventType"`
	Strength    float64 `json:"strength"`
	Description string  `json:"description"`
}

// Pattern is a recurring structure detected across a snapshot of entries.
// Identity for dedup and persistence is (user, type, name).
type Pattern struct {
	userID          string
	patternType     PatternType
	name            string
	description     string
	frequency       int
	confidence      float64
	relatedSymbols  []string
	relatedEmotions []string
	relatedThemes   []string
	timeRangeDays   int
	firstOccurrence time.Time
	lastOccurrence  time.Time
	correlation     Correlation
	insight         string
	isActive        bool
}

// NewPattern creates an active pattern with its identity fields set.
// Everything else is attached through the setters, which enforce the
// entity's invariants (confidence clamped, related sets bounded,
// occurrence range ordered).
func NewPattern(userID string, patternType PatternType, name, description string) (*Pattern, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if name == "" {
		return nil, pkgerrors.NewValidationError("pattern name cannot be empty")
	}
	if _, err := ParsePatternType(string(patternType)); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	return &Pattern{
		userID:      userID,
		patternType: patternType,
		name:        name,
		description: description,
		isActive:    true,
	}, nil
}

// ReconstructPattern rebuilds a pattern from repository data
func ReconstructPattern(
	userID string,
	patternType PatternType,
	name, description string,
	frequency int,
	confidence float64,
	relatedSymbols, relatedEmotions, relatedThemes []string,
	timeRangeDays int,
	firstOccurrence, lastOccurrence time.Time,
	correlation Correlation,
	insight string,
	isActive bool,
) (*Pattern, error) {
	p, err := NewPattern(userID, patternType, name, description)
	if err != nil {
		return nil, err
	}
	p.SetFrequency(frequency)
	p.SetConfidence(confidence)
	p.SetRelatedSymbols(relatedSymbols)
	p.SetRelatedEmotions(relatedEmotions)
	p.SetRelatedThemes(relatedThemes)
	p.SetTimeRangeDays(timeRangeDays)
	p.SetOccurrenceRange(firstOccurrence, lastOccurrence)
	p.SetCorrelation(correlation)
	p.SetInsight(insight)
	p.isActive = isActive
	return p, nil
}

// SetFrequency sets the occurrence count, floored at zero
func (p *Pattern) SetFrequency(frequency int) {
	if frequency < 0 {
		frequency = 0
	}
	p.frequency = frequency
}

// SetConfidence sets the confidence score, clamped to [0,1]
func (p *Pattern) SetConfidence(confidence float64) {
	p.confidence = Clamp01(confidence)
}

// SetRelatedSymbols sets the related symbols, bounded to MaxRelatedValues
func (p *Pattern) SetRelatedSymbols(symbols []string) {
	p.relatedSymbols = boundRelated(symbols)
}

// SetRelatedEmotions sets the related emotions, bounded to MaxRelatedValues
func (p *Pattern) SetRelatedEmotions(emotions []string) {
	p.relatedEmotions = boundRelated(emotions)
}

// SetRelatedThemes sets the related themes, bounded to MaxRelatedValues
func (p *Pattern) SetRelatedThemes(themes []string) {
	p.relatedThemes = boundRelated(themes)
}

// SetTimeRangeDays sets the analysis window length this pattern was found in
func (p *Pattern) SetTimeRangeDays(days int) {
	if days < 0 {
		days = 0
	}
	p.timeRangeDays = days
}

// SetOccurrenceRange sets the first and last contributing timestamps,
// swapping them if given out of order so first ≤ last always holds.
func (p *Pattern) SetOccurrenceRange(first, last time.Time) {
	if !last.IsZero() && !first.IsZero() && last.Before(first) {
		first, last = last, first
	}
	p.firstOccurrence = first
	p.lastOccurrence = last
}

// SetCorrelation sets the dominant context-tag correlation, strength clamped
func (p *Pattern) SetCorrelation(c Correlation) {
	c.Strength = Clamp01(c.Strength)
	p.correlation = c
}

// SetInsight sets the human-readable insight text
func (p *Pattern) SetInsight(insight string) {
	p.insight = insight
}

// Deactivate marks the pattern inactive. The engine never calls this on
// its own; deactivation is always an explicit external action.
func (p *Pattern) Deactivate() {
	p.isActive = false
}

// UserID returns the owner's ID
func (p *Pattern) UserID() string { return p.userID }

// Type returns the pattern type
func (p *Pattern) Type() PatternType { return p.patternType }

// Name returns the pattern name
func (p *Pattern) Name() string { return p.name }

// Description returns the pattern description
func (p *Pattern) Description() string { return p.description }

// Frequency returns the occurrence count
func (p *Pattern) Frequency() int { return p.frequency }

// Confidence returns the confidence score in [0,1]
func (p *Pattern) Confidence() float64 { return p.confidence }

// RelatedSymbols returns the related symbols
func (p *Pattern) RelatedSymbols() []string { return copyStrings(p.relatedSymbols) }

// RelatedEmotions returns the related emotions
func (p *Pattern) RelatedEmotions() []string { return copyStrings(p.relatedEmotions) }

// RelatedThemes returns the related themes
func (p *Pattern) RelatedThemes() []string { return copyStrings(p.relatedThemes) }

// TimeRangeDays returns the window length in days
func (p *Pattern) TimeRangeDays() int { return p.timeRangeDays }

// FirstOccurrence returns the earliest contributing timestamp
func (p *Pattern) FirstOccurrence() time.Time { return p.firstOccurrence }

// LastOccurrence returns the latest contributing timestamp
func (p *Pattern) LastOccurrence() time.Time { return p.lastOccurrence }

// Correlation returns the dominant context-tag correlation
func (p *Pattern) Correlation() Correlation { return p.correlation }

// Insight returns the insight text
func (p *Pattern) Insight() string { return p.insight }

// IsActive reports whether the pattern is active
func (p *Pattern) IsActive() bool { return p.isActive }

// Key returns the (type, name) identity used for dedup and upsert
func (p *Pattern) Key() string {
	return string(p.patternType) + "#" + p.name
}

// Clamp01 clamps v to the [0,1] interval
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func boundRelated(values []string) []string {
	if len(values) > MaxRelatedValues {
		values = values[:MaxRelatedValues]
	}
	return copyStrings(values)
}
