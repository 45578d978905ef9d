package entities

import (
	"time"

	"lucidlog-backend/domain/core/valueobjects"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// Entry is one journal record: free text plus the structured tags the
// analysis engine reads. Entries are owned and mutated by the journal
// service; once fetched into a snapshot they are immutable, which is why
// every slice accessor returns a copy.
type Entry struct {
	id          valueobjects.EntryID
	userID      string
	timestamp   time.Time
	title       string
	narrative   string
	symbols     []string
	emotions    []string
	themes      []string
	colors      []string
	contextTags []string
	metrics     valueobjects.QualityMetrics
}

// ReconstructEntry rebuilds an entry from repository data.
// The engine never creates entries, it only reads them.
func ReconstructEntry(
	id valueobjects.EntryID,
	userID string,
	timestamp time.Time,
	title, narrative string,
	symbols, emotions, themes, colors, contextTags []string,
	metrics valueobjects.QualityMetrics,
) (*Entry, error) {
	if userID == "" {
		return nil, pkgerrors.NewValidationError("userID cannot be empty")
	}
	if id.IsZero() {
		return nil, pkgerrors.NewValidationError("entry ID cannot be empty")
	}

	return &Entry{
		id:          id,
		userID:      userID,
		timestamp:   timestamp,
		title:       title,
		narrative:   narrative,
		symbols:     copyStrings(symbols),
		emotions:    copyStrings(emotions),
		themes:      copyStrings(themes),
		colors:      copyStrings(colors),
		contextTags: copyStrings(contextTags),
		metrics:     metrics,
	}, nil
}

// ID returns the entry's unique identifier
func (e *Entry) ID() valueobjects.EntryID { return e.id }

// UserID returns the owner's ID
func (e *Entry) UserID() string { return e.userID }

// Timestamp returns when the entry was recorded
func (e *Entry) Timestamp() time.Time { return e.timestamp }

// Title returns the entry title
func (e *Entry) Title() string { return e.title }

// Narrative returns the free-text body
func (e *Entry) Narrative() string { return e.narrative }

// Symbols returns the tagged symbols
func (e *Entry) Symbols() []string { return copyStrings(e.symbols) }

// Emotions returns the tagged emotions
func (e *Entry) Emotions() []string { return copyStrings(e.emotions) }

// Themes returns the tagged themes
func (e *Entry) Themes() []string { return copyStrings(e.themes) }

// Colors returns the tagged colors
func (e *Entry) Colors() []string { return copyStrings(e.colors) }

// ContextTags returns the self-reported life-context tags
func (e *Entry) ContextTags() []string { return copyStrings(e.contextTags) }

// Metrics returns the self-reported quality metrics
func (e *Entry) Metrics() valueobjects.QualityMetrics { return e.metrics }

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
