package queries

import (
	"lucidlog-backend/domain/core/valueobjects"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// ListEntriesQuery asks for the user's journal entries over a window,
// chronological ascending. Read-only passthrough to the entry provider.
type ListEntriesQuery struct {
	UserID     string
	WindowDays int
}

// Validate validates the ListEntriesQuery
func (q ListEntriesQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if q.WindowDays != 0 && (q.WindowDays < valueobjects.WindowMinDays || q.WindowDays > valueobjects.WindowMaxDays) {
		return pkgerrors.NewValidationError("window must be between 7 and 365 days")
	}
	return nil
}

// ListEntriesResult is the chronological entry list
type ListEntriesResult struct {
	Entries []EntryView `json:"entries"`
}
