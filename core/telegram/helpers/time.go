package helpers

import (
	"strings"
	"time"
)

const kickoffLayout = "Jan 2, 2006, 03:04 PM"

// LoadDisplayLocation resolves an IANA timezone name for kickoff display,
// falling back to UTC when the name is empty or unknown.
func LoadDisplayLocation(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// FormatKickoff renders an epoch timestamp in milliseconds as a short
// human-readable kickoff time in the given display timezone.
func FormatKickoff(millis int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t := time.UnixMilli(millis).In(loc)
	return t.Format(kickoffLayout)
}
