package weekday

import (
	"errors"
	"strings"
	"time"
)

// Canonical weekday values, stored lowercase.
const (
	Sunday    = "sunday"
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
)

// ValidDays contains all valid weekday values in calendar order, Sunday first.
var ValidDays = []string{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Domain errors
var (
	ErrInvalidDay = errors.New("day must be a valid day of the week")
)

// Normalize lowercases and trims a free-text weekday so that " Saturday "
// and "saturday" compare equal. It does not validate.
func Normalize(day string) string {
	return strings.ToLower(strings.TrimSpace(day))
}

// IsValid reports whether day names a real weekday after normalization.
func IsValid(day string) bool {
	n := Normalize(day)
	for _, d := range ValidDays {
		if d == n {
			return true
		}
	}
	return false
}

// Parse normalizes and validates a free-text weekday.
// PRE: day is arbitrary user input
// POST: Returns the canonical lowercase value, or ErrInvalidDay
func Parse(day string) (string, error) {
	n := Normalize(day)
	if !IsValid(n) {
		return "", ErrInvalidDay
	}
	return n, nil
}

// Equal reports whether two free-text weekday strings name the same day.
// Unknown strings only compare equal to themselves, so malformed entries
// stay inert against real dates.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// NameOf returns the canonical value for a time.Weekday.
func NameOf(d time.Weekday) string {
	return ValidDays[int(d)%7]
}

// Display returns the capitalized form used in rendered schedules,
// e.g. "saturday" -> "Saturday". Unknown input is returned trimmed as-is.
func Display(day string) string {
	n := Normalize(day)
	for i, d := range ValidDays {
		if d == n {
			return time.Weekday(i).String()
		}
	}
	return strings.TrimSpace(day)
}

// Cycle marks the start of the planning week. The cycle is display-only:
// day classification never consults it.
type Cycle struct {
	Start string
}

// NewCycle validates the start day and returns a Cycle.
// PRE: start is arbitrary user input
// POST: Returns a Cycle with canonical Start, or ErrInvalidDay
func NewCycle(start string) (Cycle, error) {
	n, err := Parse(start)
	if err != nil {
		return Cycle{}, err
	}
	return Cycle{Start: n}, nil
}

// End returns the last day of the week cycle, six days after Start.
func (c Cycle) End() string {
	for i, d := range ValidDays {
		if d == c.Start {
			return ValidDays[(i+6)%7]
		}
	}
	return ""
}
