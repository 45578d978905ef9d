package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/entities"
	"lucidlog-backend/domain/core/valueobjects"
)

// entrySpec is shorthand for building snapshot entries in tests
type entrySpec struct {
	ts       time.Time
	symbols  []string
	emotions []string
	themes   []string
	tags     []string
	lucidity int
}

func buildEntry(t *testing.T, spec entrySpec) *entities.Entry {
	t.Helper()

	entry, err := entities.ReconstructEntry(
		valueobjects.NewEntryID(),
		"user-1",
		spec.ts,
		"test entry",
		"narrative",
		spec.symbols,
		spec.emotions,
		spec.themes,
		nil,
		spec.tags,
		valueobjects.NewQualityMetrics(5, spec.lucidity, 5),
	)
	require.NoError(t, err)
	return entry
}

func buildSnapshot(t *testing.T, specs []entrySpec) []*entities.Entry {
	t.Helper()

	snapshot := make([]*entities.Entry, len(specs))
	for i, spec := range specs {
		snapshot[i] = buildEntry(t, spec)
	}
	return snapshot
}

// day returns midnight UTC n days after the fixed base date. The base is
// a Monday so weekday arithmetic in tests stays readable.
func day(n int) time.Time {
	base := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC) // Monday
	return base.AddDate(0, 0, n)
}

func findPattern(patterns []*entities.Pattern, name string) *entities.Pattern {
	for _, p := range patterns {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
