package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/katy-enrqz/BSC-SOL-1/event"
)

// EventStore persists the event log as a pretty-printed JSON array. There is
// no fine-grained append or delete; all mutation is load-modify-save of the
// whole sequence, with mu keeping individual reads and rewrites from
// interleaving.
type EventStore struct {
	mu   sync.Mutex
	path string
}

func NewEventStore(path string) *EventStore {
	return &EventStore{path: path}
}

// Load returns every stored event with instants normalized to UTC. A missing
// file is an empty log, not an error.
func (s *EventStore) Load() ([]event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	var events []event.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	for i := range events {
		events[i].At = events[i].At.UTC()
	}
	return events, nil
}

// Save atomically overwrites the log with the given sequence. Instants are
// normalized to UTC on a copy so no naive or offset-shifted timestamp is ever
// persisted and the caller's slice is left untouched.
func (s *EventStore) Save(events []event.Event) error {
	out := make([]event.Event, len(events))
	copy(out, events)
	for i := range out {
		out[i].At = out[i].At.UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	return nil
}
