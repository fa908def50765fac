package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katy-enrqz/BSC-SOL-1/event"
)

var (
	// ErrInvalidZone rejects a zone name the IANA database does not know.
	ErrInvalidZone = errors.New("invalid timezone")
	// ErrNoTimezone means the user never set a preference.
	ErrNoTimezone = errors.New("no timezone set")
)

// TimezoneStore keeps the user-id → IANA zone mapping in a JSON object file.
// Last write wins; there is at most one zone per user. mu serializes the
// load-modify-save cycle so concurrent Sets cannot drop each other's entries.
type TimezoneStore struct {
	mu   sync.Mutex
	path string
}

func NewTimezoneStore(path string) *TimezoneStore {
	return &TimezoneStore{path: path}
}

// load reads the whole mapping. Corrupt or non-object content degrades to an
// empty map with a logged warning instead of failing the caller.
func (s *TimezoneStore) load() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("could not read timezone file", "path", s.path, "error", err)
		}
		return map[string]string{}
	}
	var zones map[string]string
	if err := json.Unmarshal(raw, &zones); err != nil {
		log.Warn("timezone file is not a mapping, resetting", "path", s.path, "error", err)
		return map[string]string{}
	}
	if zones == nil {
		zones = map[string]string{}
	}
	return zones
}

// Get returns the stored zone name for userID, if any.
func (s *TimezoneStore) Get(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	zone, ok := s.load()[userID]
	return zone, ok
}

// All returns the full mapping.
func (s *TimezoneStore) All() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Set validates zone against the IANA database and persists it for userID.
// Invalid names are rejected without mutating the store.
func (s *TimezoneStore) Set(userID, zone string) error {
	if !event.ValidZone(zone) {
		return fmt.Errorf("%w: %q", ErrInvalidZone, zone)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	zones := s.load()
	zones[userID] = zone
	data, err := json.MarshalIndent(zones, "", "  ")
	if err != nil {
		return fmt.Errorf("encode timezones: %w", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("write timezones: %w", err)
	}
	return nil
}

// Location resolves the user's preferred *time.Location. No stored preference
// yields ErrNoTimezone; a stored name that no longer loads falls back to UTC.
func (s *TimezoneStore) Location(userID string) (*time.Location, error) {
	zone, ok := s.Get(userID)
	if !ok {
		return nil, ErrNoTimezone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		log.Warn("stored timezone no longer loads, using UTC", "user", userID, "zone", zone)
		return time.UTC, nil
	}
	return loc, nil
}
