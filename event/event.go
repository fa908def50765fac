package event

import "time"

// Event is one scheduled game night. At is the single source of truth for all
// comparisons and reminder math and is always held in UTC; the JSON field
// names match the on-disk log format.
type Event struct {
	Game   string    `json:"game"`
	At     time.Time `json:"datetime"`
	Notes  string    `json:"notes,omitempty"`
	Author string    `json:"author"`
}
