package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katy-enrqz/BSC-SOL-1/event"
)

type fakeNotifier struct {
	delivered []event.Event
	err       error
}

func (f *fakeNotifier) Announce(ev event.Event) error {
	f.delivered = append(f.delivered, ev)
	return f.err
}

type timerCall struct {
	d time.Duration
	f func()
}

// newTestScheduler pins the clock to now and captures timer registrations
// instead of arming real timers.
func newTestScheduler(n Notifier, now time.Time) (*Scheduler, *[]timerCall) {
	s := New(n)
	s.now = func() time.Time { return now }
	calls := &[]timerCall{}
	s.afterFunc = func(d time.Duration, f func()) {
		*calls = append(*calls, timerCall{d: d, f: f})
	}
	return s, calls
}

func TestScheduleSkipsInsideLeadWindow(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	s, calls := newTestScheduler(&fakeNotifier{}, now)

	// 10 minutes out: the reminder window already passed, no catch-up.
	ok := s.Schedule(event.Event{Game: "Phasmophobia", At: now.Add(10 * time.Minute)})
	assert.False(t, ok)
	assert.Empty(t, *calls)
	assert.Zero(t, s.Pending())
}

func TestScheduleSkipsExactBoundary(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	s, calls := newTestScheduler(&fakeNotifier{}, now)

	// fire_at == now is not strictly future.
	ok := s.Schedule(event.Event{Game: "REPO", At: now.Add(Lead)})
	assert.False(t, ok)
	assert.Empty(t, *calls)
}

func TestScheduleRegistersReminder(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	s, calls := newTestScheduler(&fakeNotifier{}, now)

	ok := s.Schedule(event.Event{Game: "Demonologist", At: now.Add(45 * time.Minute)})
	require.True(t, ok)
	require.Len(t, *calls, 1)
	assert.Equal(t, 15*time.Minute, (*calls)[0].d)
	assert.Equal(t, 1, s.Pending())
}

func TestFireDeliversAndConsumesJob(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	n := &fakeNotifier{}
	s, calls := newTestScheduler(n, now)

	ev := event.Event{Game: "Lethal Company", At: now.Add(2 * time.Hour), Notes: "mods on"}
	require.True(t, s.Schedule(ev))

	(*calls)[0].f()
	require.Len(t, n.delivered, 1)
	assert.Equal(t, ev, n.delivered[0])
	assert.Zero(t, s.Pending())
}

func TestFireSwallowsDeliveryError(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	n := &fakeNotifier{err: errors.New("channel not found")}
	s, calls := newTestScheduler(n, now)

	require.True(t, s.Schedule(event.Event{Game: "Panicore", At: now.Add(time.Hour)}))
	assert.NotPanics(t, (*calls)[0].f)
	assert.Zero(t, s.Pending())
}

func TestReplayAllSkipsStaleJobs(t *testing.T) {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	s, calls := newTestScheduler(&fakeNotifier{}, now)

	events := []event.Event{
		{Game: "long past", At: now.Add(-24 * time.Hour)},
		{Game: "inside window", At: now.Add(10 * time.Minute)},
		{Game: "tonight", At: now.Add(8 * time.Hour)},
		{Game: "next week", At: now.Add(7 * 24 * time.Hour)},
	}

	n := s.ReplayAll(events)
	assert.Equal(t, 2, n)
	assert.Len(t, *calls, 2)
	assert.Equal(t, 2, s.Pending())
}
