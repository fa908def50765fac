package event

import "time"

// ValidZone reports whether name is a known IANA timezone identifier.
// "Local" loads but is not an IANA name and shifts with the host's timezone,
// so it is rejected too.
func ValidZone(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
