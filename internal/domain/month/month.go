package month

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Canonical month values, stored lowercase.
const (
	January   = "january"
	February  = "february"
	March     = "march"
	April     = "april"
	May       = "may"
	June      = "june"
	July      = "july"
	August    = "august"
	September = "september"
	October   = "october"
	November  = "november"
	December  = "december"
)

// ValidMonths contains all valid month values in calendar order.
var ValidMonths = []string{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// Domain errors
var (
	ErrInvalidMonth = errors.New("month must be a valid month name")
	ErrInvalidYear  = errors.New("year must be positive")
)

// Parse normalizes and validates a free-text month name.
// PRE: name is arbitrary user input
// POST: Returns the canonical lowercase value, or ErrInvalidMonth
func Parse(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, m := range ValidMonths {
		if m == n {
			return n, nil
		}
	}
	return "", ErrInvalidMonth
}

// Number returns the time.Month for a canonical month value.
func Number(name string) (time.Month, error) {
	n, err := Parse(name)
	if err != nil {
		return 0, err
	}
	for i, m := range ValidMonths {
		if m == n {
			return time.Month(i + 1), nil
		}
	}
	return 0, ErrInvalidMonth
}

// Target identifies one month of one year to derive a schedule for.
type Target struct {
	Month string // canonical lowercase month value
	Year  int
}

// NewTarget validates and builds a Target from free-text input.
// PRE: name and year are arbitrary user input
// POST: Returns a Target with canonical Month, or a validation error
func NewTarget(name string, year int) (Target, error) {
	n, err := Parse(name)
	if err != nil {
		return Target{}, err
	}
	if year <= 0 {
		return Target{}, ErrInvalidYear
	}
	return Target{Month: n, Year: year}, nil
}

// Number returns the target's time.Month.
func (t Target) Number() time.Month {
	n, _ := Number(t.Month)
	return n
}

// Days returns the number of calendar days in the target month.
// Leap years fall out of time.Date normalization (day 0 of the next month).
func (t Target) Days() int {
	return time.Date(t.Year, t.Number()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns midnight UTC on the first day of the target month.
func (t Target) First() time.Time {
	return time.Date(t.Year, t.Number(), 1, 0, 0, 0, 0, time.UTC)
}

// Label returns the display label used as a summary key, e.g. "January 2024".
func (t Target) Label() string {
	return fmt.Sprintf("%s %d", t.Number().String(), t.Year)
}
