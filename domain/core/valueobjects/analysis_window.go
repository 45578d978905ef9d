package valueobjects

import (
	"errors"
	"time"
)

// Analysis window bounds in days.
const (
	WindowMinDays     = 7
	WindowMaxDays     = 365
	WindowDefaultDays = 90
)

// AnalysisWindow is the bounded date range a snapshot is fetched over.
type AnalysisWindow struct {
	days int
	end  time.Time
}

// NewAnalysisWindow creates a window of the given length ending at end.
// Zero days selects the default; out-of-range values are rejected.
func NewAnalysisWindow(days int, end time.Time) (AnalysisWindow, error) {
	if days == 0 {
		days = WindowDefaultDays
	}
	if days < WindowMinDays || days > WindowMaxDays {
		return AnalysisWindow{}, errors.New("window must be between 7 and 365 days")
	}
	return AnalysisWindow{days: days, end: end}, nil
}

// Days returns the window length in days
func (w AnalysisWindow) Days() int { return w.days }

// End returns the window end time
func (w AnalysisWindow) End() time.Time { return w.end }

// Start returns the window start time
func (w AnalysisWindow) Start() time.Time {
	return w.end.AddDate(0, 0, -w.days)
}

// Contains reports whether t falls inside the window
func (w AnalysisWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start()) && !t.After(w.end)
}
