package tz

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// DefaultName is the zone used when a request names none.
const DefaultName = "Asia/Kolkata"

// Default is the Asia/Kolkata location (IST, no DST).
var Default *time.Location

func init() {
	var err error
	Default, err = time.LoadLocation(DefaultName)
	if err != nil {
		panic("tz: load " + DefaultName + ": " + err.Error())
	}
}

// ErrUnknownZone is returned by Resolve for names that are not IANA zones.
var ErrUnknownZone = errors.New("unknown timezone")

// Resolve loads an IANA zone. Unknown names, the empty string and "Local"
// yield an error wrapping ErrUnknownZone.
func Resolve(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	return loc, nil
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// ParseTimestamp parses an RFC 3339 timestamp. A value without offset is read
// as wall-clock time in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = Default
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC 3339, e.g. 2025-02-15T14:00:00+05:30)", value)
}

// Format renders t in loc as RFC 3339, or "" for the zero time.
func Format(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.RFC3339Nano)
}
