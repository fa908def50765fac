package event

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrUnparsable is returned when none of the supported date/time patterns
// match the input.
var ErrUnparsable = errors.New("unrecognized date/time format")

// layouts are tried in order against the normalized input; the first match
// wins. 12-hour forms come before 24-hour so "8:30pm" is never read as 08:30.
var layouts = []string{
	"January 2 2006 3:04pm",
	"January 2 2006 3pm",
	"January 2 2006 15:04",
	"Jan 2 2006 3:04pm",
	"Jan 2 2006 3pm",
	"Jan 2 2006 15:04",
}

var yearPattern = regexp.MustCompile(`\b\d{4}\b`)

// ParseLocal interprets a user-entered date and time as wall-clock time in loc
// and returns the equivalent UTC instant. Hyphens fold to spaces, so
// "April-16" and "April 16" are equivalent. A date without a year gets the
// current year in loc.
func ParseLocal(dateText, timeText string, loc *time.Location, now time.Time) (time.Time, error) {
	date := normalize(dateText)
	if !yearPattern.MatchString(date) {
		date = fmt.Sprintf("%s %d", date, now.In(loc).Year())
	}
	input := strings.TrimSpace(date + " " + normalize(timeText))

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, input)
}

// normalize folds hyphens into spaces, collapses whitespace and fixes token
// casing so inputs like "april-16" or "8:30 PM" match the reference layouts.
// A detached "am"/"pm" token is glued onto the preceding time token.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	var out []string
	for _, f := range strings.Fields(strings.ToLower(s)) {
		switch {
		case (f == "am" || f == "pm") && len(out) > 0:
			out[len(out)-1] += f
		case f[0] >= 'a' && f[0] <= 'z':
			out = append(out, strings.ToUpper(f[:1])+f[1:])
		default:
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
