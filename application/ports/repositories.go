// Package ports defines the interfaces the application layer consumes.
// Implementations live under infrastructure; the engine itself never
// touches storage or the network directly.
package ports

import (
	"context"
	"time"

	"lucidlog-backend/domain/core/entities"
	"lucidlog-backend/domain/events"
)

// EntryReader is the entry snapshot provider. ListEntries returns the
// user's entries inside [start, end] in chronological ascending order;
// the returned slice is immutable for the duration of one analysis run.
type EntryReader interface {
	ListEntries(ctx context.Context, userID string, start, end time.Time) ([]*entities.Entry, error)
}

// PatternRepository persists detected patterns, keyed by (user, type, name).
type PatternRepository interface {
	// Upsert updates the record in place when the key exists, otherwise
	// inserts a new one. Patterns are never deleted by the engine.
	Upsert(ctx context.Context, pattern *entities.Pattern) error

	// FindActiveByUser returns the user's active patterns in no
	// particular order.
	FindActiveByUser(ctx context.Context, userID string) ([]*entities.Pattern, error)

	// Deactivate flips the active flag for one pattern. Only ever called
	// from an explicit external action, never from an analysis run.
	Deactivate(ctx context.Context, userID string, patternType entities.PatternType, name string) error
}

// EntrySummary is the bounded per-entry digest sent to the suggestion
// service to keep prompt size under control.
type EntrySummary struct {
	Date     time.Time `json:"date"`
	Title    string    `json:"title"`
	Symbols  []string  `json:"symbols"`  // top 5
	Emotions []string  `json:"emotions"` // top 3
	Themes   []string  `json:"themes"`   // top 3
}

// PatternCandidate is a suggestion-service proposal before it is mapped
// into the closed pattern taxonomy. Category is a coarse free-form string.
type PatternCandidate struct {
	Category    string
	Name        string
	Description string
	Confidence  float64
	Frequency   int
	Insight     string
}

// SuggestionService is the generative-text collaborator. Failures and
// malformed responses must degrade to an empty candidate list upstream.
type SuggestionService interface {
	SuggestPatterns(ctx context.Context, summaries []EntrySummary) ([]PatternCandidate, error)
}

// EventBus publishes domain events to interested collaborators
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
}

// Cache is a simple TTL cache used by the query bus middleware
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
