package gtfstype

import (
	"fmt"
	"strconv"
	"strings"
)

// Time is a GTFS time-of-day value, stored as seconds since noon minus 12
// hours on the day in question. Hours may legally exceed 24 to express
// service continuing past midnight (e.g. "25:30:00").
type Time struct {
	Seconds int
}

// ParseTime parses "[H]H:MM:SS" into a Time. Negative components or a
// malformed shape are rejected.
func ParseTime(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Time{}, fmt.Errorf("gtfstype: time %q must have the form H:MM:SS", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || len(parts[0]) == 0 {
		return Time{}, fmt.Errorf("gtfstype: time %q has invalid hours", s)
	}
	if len(parts[1]) != 2 {
		return Time{}, fmt.Errorf("gtfstype: time %q minutes must be 2 digits", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Time{}, fmt.Errorf("gtfstype: time %q has invalid minutes", s)
	}
	if len(parts[2]) != 2 {
		return Time{}, fmt.Errorf("gtfstype: time %q seconds must be 2 digits", s)
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil || sec < 0 || sec > 59 {
		return Time{}, fmt.Errorf("gtfstype: time %q has invalid seconds", s)
	}
	return Time{Seconds: h*3600 + m*60 + sec}, nil
}

// String formats the time back as HH:MM:SS, zero-padding hours to at least
// two digits as GTFS producers conventionally do.
func (t Time) String() string {
	h := t.Seconds / 3600
	m := (t.Seconds % 3600) / 60
	s := t.Seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// Before reports whether t occurs strictly earlier than other.
func (t Time) Before(other Time) bool {
	return t.Seconds < other.Seconds
}
