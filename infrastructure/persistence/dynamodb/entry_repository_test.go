package dynamodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucidlog-backend/domain/core/valueobjects"
)

func validEntryItem() entryItem {
	return entryItem{
		PK:           "USER#user-1",
		SK:           "ENTRY#2026-08-03T06:00:00Z",
		EntityType:   "ENTRY",
		EntryID:      valueobjects.NewEntryID().String(),
		UserID:       "user-1",
		Timestamp:    "2026-08-03T06:00:00Z",
		Title:        "ocean crossing",
		Narrative:    "sailing through a storm",
		Symbols:      []string{"water", "boat"},
		Emotions:     []string{"fear"},
		Themes:       []string{"being lost"},
		Colors:       []string{"grey"},
		ContextTags:  []string{"work-stress"},
		SleepQuality: 6,
		Lucidity:     8,
		Vividness:    7,
	}
}

func TestEntryItem_ToEntity(t *testing.T) {
	item := validEntryItem()

	entry, err := item.toEntity()
	require.NoError(t, err)

	assert.Equal(t, item.EntryID, entry.ID().String())
	assert.Equal(t, "user-1", entry.UserID())
	assert.Equal(t, time.Date(2026, 8, 3, 6, 0, 0, 0, time.UTC), entry.Timestamp().UTC())
	assert.Equal(t, "ocean crossing", entry.Title())
	assert.Equal(t, []string{"water", "boat"}, entry.Symbols())
	assert.Equal(t, []string{"work-stress"}, entry.ContextTags())
	assert.Equal(t, 8, entry.Metrics().Lucidity())
}

func TestEntryItem_ToEntity_RejectsBadData(t *testing.T) {
	item := validEntryItem()
	item.EntryID = "not-a-uuid"
	_, err := item.toEntity()
	assert.Error(t, err)

	item = validEntryItem()
	item.Timestamp = "last tuesday"
	_, err = item.toEntity()
	assert.Error(t, err)
}

func TestEntryItem_ToEntity_ClampsMetrics(t *testing.T) {
	item := validEntryItem()
	item.Lucidity = 14
	item.SleepQuality = -2

	entry, err := item.toEntity()
	require.NoError(t, err)
	assert.Equal(t, 10, entry.Metrics().Lucidity())
	assert.Equal(t, 0, entry.Metrics().SleepQuality())
}
