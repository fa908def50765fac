package schedule

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katy-enrqz/BSC-SOL-1/event"
)

// Lead is how far before an event's start its reminder fires.
const Lead = 30 * time.Minute

// Notifier delivers a reminder announcement. The Discord binding implements
// it; tests inject a fake.
type Notifier interface {
	Announce(ev event.Event) error
}

// Scheduler owns the in-process one-shot reminder timers. It is never a source
// of truth: every pending job is derivable from the event store, which is how
// ReplayAll rebuilds the timer set after a restart.
type Scheduler struct {
	notifier Notifier

	// now and afterFunc are swapped out in tests.
	now       func() time.Time
	afterFunc func(d time.Duration, f func())

	mu      sync.Mutex
	pending int
}

func New(n Notifier) *Scheduler {
	return &Scheduler{
		notifier:  n,
		now:       time.Now,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Schedule registers a one-shot reminder firing Lead before ev starts and
// reports whether a job was created. Events already inside or past their
// reminder window are skipped; there is no catch-up reminder.
func (s *Scheduler) Schedule(ev event.Event) bool {
	now := s.now()
	fireAt := ev.At.Add(-Lead)
	if !fireAt.After(now) {
		return false
	}

	s.mu.Lock()
	s.pending++
	s.mu.Unlock()

	s.afterFunc(fireAt.Sub(now), func() { s.fire(ev) })
	log.Info("reminder scheduled", "game", ev.Game, "fireAt", fireAt.Format(time.RFC3339))
	return true
}

// ReplayAll re-applies Schedule to every stored event, relying on the
// future-only check to drop stale ones. Called once at process start.
func (s *Scheduler) ReplayAll(events []event.Event) int {
	n := 0
	for _, ev := range events {
		if s.Schedule(ev) {
			n++
		}
	}
	return n
}

// Pending reports how many reminders are registered but not yet fired.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// fire consumes the job. Delivery failures are logged and swallowed; there is
// no retry and no record that the reminder went out.
func (s *Scheduler) fire(ev event.Event) {
	s.mu.Lock()
	s.pending--
	s.mu.Unlock()

	if err := s.notifier.Announce(ev); err != nil {
		log.Error("reminder delivery failed", "game", ev.Game, "error", err)
	}
}
