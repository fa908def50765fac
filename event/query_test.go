package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpcomingFiltersAndSorts(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Game: "past", At: now.Add(-time.Hour)},
		{Game: "later", At: now.Add(3 * time.Hour)},
		{Game: "soon", At: now.Add(time.Hour)},
		{Game: "boundary", At: now}, // instant == now is not upcoming
	}

	up := Upcoming(events, now)
	require.Len(t, up, 2)
	assert.Equal(t, "soon", up[0].Game)
	assert.Equal(t, "later", up[1].Game)
	for i := 1; i < len(up); i++ {
		assert.False(t, up[i].At.Before(up[i-1].At))
	}
}

func TestUpcomingStableOnTies(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	at := now.Add(time.Hour)
	events := []Event{
		{Game: "first", At: at},
		{Game: "second", At: at},
		{Game: "third", At: at},
	}

	up := Upcoming(events, now)
	require.Len(t, up, 3)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{up[0].Game, up[1].Game, up[2].Game})
}

func TestNextEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		_, ok := Next(nil, time.Now().UTC())
		assert.False(t, ok)
	})
}

func TestNextPicksSoonest(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Game: "later", At: now.Add(2 * time.Hour)},
		{Game: "soon", At: now.Add(time.Hour)},
	}

	ev, ok := Next(events, now)
	require.True(t, ok)
	assert.Equal(t, "soon", ev.Game)
}

func TestClearPastIdempotent(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Game: "past", At: now.Add(-time.Hour)},
		{Game: "old", At: now.Add(-48 * time.Hour)},
		{Game: "future", At: now.Add(time.Hour)},
	}

	kept, removed := ClearPast(events, now)
	assert.Equal(t, 2, removed)
	require.Len(t, kept, 1)

	again, removed := ClearPast(kept, now)
	assert.Zero(t, removed)
	assert.Equal(t, kept, again)
}

func TestFormatLocal(t *testing.T) {
	loc := mustZone(t, "America/New_York")
	ev := Event{At: time.Date(2025, time.May, 8, 0, 30, 0, 0, time.UTC)}

	assert.Equal(t, "May 7, 2025 at 8:30 PM (EDT)", FormatLocal(ev, loc))
	assert.Equal(t, "May 8, 2025 at 12:30 AM (UTC)", FormatLocal(ev, time.UTC))
}
