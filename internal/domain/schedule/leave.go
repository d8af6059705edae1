package schedule

import (
	"errors"
	"time"

	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/weekday"
)

// Domain errors
var (
	ErrNotScheduled = errors.New("member is not scheduled to work on this date")
)

// WhoWorksOn returns the names of members scheduled to work on the given
// date, in roster order. A member works unless the date's weekday is one of
// their off-days; unassigned shifts do not exempt anyone.
func WhoWorksOn(r *roster.Roster, date time.Time) []string {
	day := weekday.NameOf(date.Weekday())
	var working []string
	for _, m := range r.Members() {
		if !m.IsOffOn(day) {
			working = append(working, m.Name)
		}
	}
	return working
}

// ApproveLeave removes name from a previously computed work set. The
// approval is transient: it touches only the in-memory set and never marks
// the roster itself.
// PRE: workSet was produced by WhoWorksOn for the date in question
// POST: Returns the set without name, or ErrNotScheduled if absent
func ApproveLeave(workSet []string, name string) ([]string, error) {
	for i, n := range workSet {
		if n == name {
			remaining := make([]string, 0, len(workSet)-1)
			remaining = append(remaining, workSet[:i]...)
			remaining = append(remaining, workSet[i+1:]...)
			return remaining, nil
		}
	}
	return workSet, ErrNotScheduled
}
