package events

import (
	"time"
)

// PatternsComputed is raised after an analysis run persists its results.
// Downstream collaborators (notification scheduling, digests) subscribe to
// it; this engine only publishes.
type PatternsComputed struct {
	BaseEvent
	UserID       string   `json:"user_id"`
	WindowDays   int      `json:"window_days"`
	PatternCount int      `json:"pattern_count"`
	PatternNames []string `json:"pattern_names"`
}

// NewPatternsComputed creates a PatternsComputed event
func NewPatternsComputed(userID string, windowDays, patternCount int, patternNames []string) PatternsComputed {
	return PatternsComputed{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "patterns.computed",
			Timestamp:   time.Now(),
			Version:     1,
		},
		UserID:       userID,
		WindowDays:   windowDays,
		PatternCount: patternCount,
		PatternNames: patternNames,
	}
}
