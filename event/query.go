package event

import (
	"sort"
	"time"
)

// Upcoming returns the events strictly after now, soonest first. The sort is
// stable so events sharing an instant keep their insertion order.
func Upcoming(events []Event, now time.Time) []Event {
	var out []Event
	for _, e := range events {
		if e.At.After(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// Next returns the nearest future event, if any.
func Next(events []Event, now time.Time) (Event, bool) {
	up := Upcoming(events, now)
	if len(up) == 0 {
		return Event{}, false
	}
	return up[0], true
}

// ClearPast partitions events by the same future predicate Upcoming uses and
// returns the retained events plus the number removed.
func ClearPast(events []Event, now time.Time) ([]Event, int) {
	kept := make([]Event, 0, len(events))
	for _, e := range events {
		if e.At.After(now) {
			kept = append(kept, e)
		}
	}
	return kept, len(events) - len(kept)
}

// FormatLocal renders the event instant in the given zone for display. The
// stored instant itself stays UTC.
func FormatLocal(e Event, loc *time.Location) string {
	return e.At.In(loc).Format("January 2, 2006 at 3:04 PM (MST)")
}
