package queries

import (
	"lucidlog-backend/domain/core/valueobjects"
	pkgerrors "lucidlog-backend/pkg/errors"
)

// GetPatternInsightsQuery asks for the user's patterns with their derived
// read-time insights attached.
type GetPatternInsightsQuery struct {
	UserID     string
	WindowDays int
}

// Validate validates the GetPatternInsightsQuery
func (q GetPatternInsightsQuery) Validate() error {
	if q.UserID == "" {
		return pkgerrors.NewValidationError("user ID is required")
	}
	if q.WindowDays != 0 && (q.WindowDays < valueobjects.WindowMinDays || q.WindowDays > valueobjects.WindowMaxDays) {
		return pkgerrors.NewValidationError("window must be between 7 and 365 days")
	}
	return nil
}

// GetPatternInsightsResult pairs each pattern with its insight
type GetPatternInsightsResult struct {
	Insights []PatternInsightView `json:"insights"`
}
