package queries

import (
	"lucidlog-backend/domain/core/valueobjects"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// GetPatternsQuery asks for the user's ranked patterns over a window.
// Refresh true forces a recompute, bypassing persisted results.
type GetPatternsQuery struct {
	UserID     string
	WindowDays int
	Refresh    bool
}

// Validate validates the GetPatternsQuery
func (q GetPatternsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if q.WindowDays != 0 && (q.WindowDays < valueobjects.WindowMinDays || q.WindowDays > valueobjects.WindowMaxDays) {
		return pkgerrors.NewValidationError("window must be between 7 and 365 days")
	}
	return nil
}

// GetPatternsResult is the ranked pattern list
type GetPatternsResult struct {
	Patterns []PatternView `json:"patterns"`
}
