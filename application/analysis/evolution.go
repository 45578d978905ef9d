package analysis

import (
	"fmt"
	"sort"

	"lucidlog-backend/domain/core/entities"
)

// ThemeEvolutionAnalyzer detects themes whose frequency shifts between the
// first and second half of the window.
//
// The thresholds here (absolute delta of 2, relative change of 50%)
// are a documented design decision, not an inherited constant.
type ThemeEvolutionAnalyzer struct {
	opts Options
}

// NewThemeEvolutionAnalyzer creates a theme evolution analyzer
func NewThemeEvolutionAnalyzer(opts Options) *ThemeEvolutionAnalyzer {
	return &ThemeEvolutionAnalyzer{opts: opts}
}

// Analyze splits the chronologically ordered snapshot at its midpoint and
// compares per-theme entry counts between the halves. A theme qualifies
// when the halves differ by at least EvolutionMinDelta entries and the
// change relative to the early half is at least EvolutionMinRelativeChange.
func (a *ThemeEvolutionAnalyzer) Analyze(userID string, snapshot []*entities.Entry, windowDays int) []*entities.Pattern {
	if len(snapshot) < a.opts.MinEntries {
		return nil
	}

	mid := len(snapshot) / 2
	early, late := snapshot[:mid], snapshot[mid:]

	earlyContributors := themeContributors(early)
	lateContributors := themeContributors(late)

	themes := make(map[string]struct{})
	for theme := range earlyContributors {
		themes[theme] = struct{}{}
	}
	for theme := range lateContributors {
		themes[theme] = struct{}{}
	}

	names := make([]string, 0, len(themes))
	for theme := range themes {
		names = append(names, theme)
	}
	sort.Strings(names)

	var patterns []*entities.Pattern
	for _, theme := range names {
		earlyCount := len(earlyContributors[theme])
		lateCount := len(lateContributors[theme])
		delta := lateCount - earlyCount
		if delta < 0 {
			delta = -delta
		}
		if delta < a.opts.EvolutionMinDelta {
			continue
		}

		// A theme absent from the early half has no base to be relative
		// to; treat the base as one entry so new themes can qualify.
		base := earlyCount
		if base == 0 {
			base = 1
		}
		if float64(delta)/float64(base) < a.opts.EvolutionMinRelativeChange {
			continue
		}

		direction := "intensifying"
		if lateCount < earlyCount {
			direction = "fading"
		}

		union := append(append([]*entities.Entry{}, earlyContributors[theme]...), lateContributors[theme]...)
		correlation := correlate(union)

		pattern, err := entities.NewPattern(
			userID,
			entities.PatternThemeEvolution,
			fmt.Sprintf("Evolving Theme: %s", theme),
			fmt.Sprintf("%q is %s: %d entries in the early half of the window, %d in the late half", theme, direction, earlyCount, lateCount),
		)
		if err != nil {
			continue
		}

		pattern.SetFrequency(len(union))
		pattern.SetConfidence(scoreConfidence(len(union), len(snapshot), correlation, a.opts))
		pattern.SetCorrelation(correlation)
		pattern.SetTimeRangeDays(windowDays)
		pattern.SetRelatedThemes([]string{theme})
		if len(union) > 0 {
			pattern.SetOccurrenceRange(union[0].Timestamp(), union[len(union)-1].Timestamp())
		}
		pattern.SetInsight(fmt.Sprintf("The theme %q is %s across this window. Shifts like this usually track a change in waking life worth naming.", theme, direction))

		patterns = append(patterns, pattern)
	}
	return patterns
}

// themeContributors maps each theme to the entries carrying it,
// counting once per entry and preserving chronological order.
func themeContributors(entries []*entities.Entry) map[string][]*entities.Entry {
	contributors := make(map[string][]*entities.Entry)
	for _, entry := range entries {
		for _, theme := range uniqueValues(entry.Themes()) {
			contributors[theme] = append(contributors[theme], entry)
		}
	}
	return contributors
}
