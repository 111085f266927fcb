package program

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LocalOffset is the fixed offset of the conference's local time from UTC.
// No DST handling: the program ran entirely within one offset.
const LocalOffset = -7 * time.Hour

// LocalZone is the fixed zone used for all displayed dates and times
var LocalZone = time.FixedZone("UTC-7", int(LocalOffset/time.Second))

// ErrTimestamp is returned for timestamps that cannot be parsed
var ErrTimestamp = errors.New("malformed timestamp")

const (
	DateLayout  = "01-02"
	ClockLayout = "15:04"
)

// timestampLayouts are the ISO-8601 forms accepted once a trailing "Z" is removed
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseUTC parses an ISO-8601 UTC timestamp with an optional trailing "Z"
func ParseUTC(s string) (time.Time, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "Z")
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrTimestamp, s)
}

// Normalize converts a UTC start/end pair into the local date (taken from start only)
// and local start and end clock times.
func Normalize(startUTC, endUTC string) (date, start, end string, err error) {
	s, err := ParseUTC(startUTC)
	if err != nil {
		return "", "", "", err
	}
	e, err := ParseUTC(endUTC)
	if err != nil {
		return "", "", "", err
	}

	s = s.In(LocalZone)
	e = e.In(LocalZone)
	return s.Format(DateLayout), s.Format(ClockLayout), e.Format(ClockLayout), nil
}

// LocalTime combines a catalog date ("MM-DD") and clock time ("HH:MM") of the given year
// into a time in LocalZone.
func LocalTime(year int, date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-"+DateLayout+" "+ClockLayout, fmt.Sprintf("%04d-%s %s", year, date, clock), LocalZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %s", ErrTimestamp, date, clock)
	}
	return t, nil
}
