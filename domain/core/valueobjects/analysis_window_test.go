package valueobjects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalysisWindow_DefaultsOnZero(t *testing.T) {
	end := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	w, err := NewAnalysisWindow(0, end)
	require.NoError(t, err)

	assert.Equal(t, WindowDefaultDays, w.Days())
	assert.Equal(t, end, w.End())
	assert.Equal(t, end.AddDate(0, 0, -WindowDefaultDays), w.Start())
}

func TestNewAnalysisWindow_Bounds(t *testing.T) {
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)

	w, err := NewAnalysisWindow(WindowMinDays, end)
	require.NoError(t, err)
	assert.Equal(t, 7, w.Days())

	w, err = NewAnalysisWindow(WindowMaxDays, end)
	require.NoError(t, err)
	assert.Equal(t, 365, w.Days())

	_, err = NewAnalysisWindow(WindowMinDays-1, end)
	assert.Error(t, err)

	_, err = NewAnalysisWindow(WindowMaxDays+1, end)
	assert.Error(t, err)

	_, err = NewAnalysisWindow(-30, end)
	assert.Error(t, err)
}

func TestAnalysisWindow_Contains(t *testing.T) {
	end := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	w, err := NewAnalysisWindow(30, end)
	require.NoError(t, err)

	assert.True(t, w.Contains(w.Start()), "start is inclusive")
	assert.True(t, w.Contains(end), "end is inclusive")
	assert.True(t, w.Contains(end.AddDate(0, 0, -10)))
	assert.False(t, w.Contains(w.Start().Add(-time.Second)))
	assert.False(t, w.Contains(end.Add(time.Second)))
}

func TestNewQualityMetrics_Clamps(t *testing.T) {
	m := NewQualityMetrics(-3, 15, 7)

	assert.Equal(t, 0, m.SleepQuality())
	assert.Equal(t, 10, m.Lucidity())
	assert.Equal(t, 7, m.Vividness())
}

func TestEntryID_FromString(t *testing.T) {
	id := NewEntryID()
	parsed, err := NewEntryIDFromString(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))

	_, err = NewEntryIDFromString("")
	assert.Error(t, err)

	_, err = NewEntryIDFromString("not-a-uuid")
	assert.Error(t, err)
}
