package schedule

import (
	"time"

	"rosterplan/internal/domain/member"
	"rosterplan/internal/domain/month"
	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/weekday"
)

// Status values for derived day classifications. A day that is neither an
// off-day nor unassigned carries the member's shift label instead.
const (
	StatusWeekOff = "Week Off"
	StatusNoShift = "No shift assigned"
)

// Entry is one derived calendar day with a status per member. Entries are
// generated fresh on every request and never persisted.
type Entry struct {
	Date     time.Time
	Weekday  string // capitalized weekday name, e.g. "Saturday"
	Statuses map[string]string
}

// MonthlySummary aggregates one member's month.
// INVARIANT: WorkingDays + WeekOffs == days in the month
type MonthlySummary struct {
	WorkingDays int
	WeekOffs    int
	ShiftTiming string
	WeekOffDays []string
}

// Summaries maps member name -> month label -> MonthlySummary.
type Summaries map[string]map[string]MonthlySummary

// Derive produces the day-by-day work/off table and per-member monthly
// totals for the given target months. Months are processed independently in
// the order given; an empty roster or empty target list yields empty
// results rather than an error, leaving precondition warnings to the
// caller.
func Derive(r *roster.Roster, targets []month.Target) ([]Entry, Summaries) {
	members := r.Members()
	summaries := make(Summaries, len(members))
	for _, m := range members {
		summaries[m.Name] = make(map[string]MonthlySummary, len(targets))
	}

	var entries []Entry
	for _, target := range targets {
		first := target.First()
		days := target.Days()
		label := target.Label()

		counts := make(map[string]*MonthlySummary, len(members))
		for _, m := range members {
			counts[m.Name] = &MonthlySummary{
				ShiftTiming: m.ShiftSummary(),
				WeekOffDays: append([]string(nil), m.WeekOffs...),
			}
		}

		for day := 0; day < days; day++ {
			date := first.AddDate(0, 0, day)
			name := weekday.NameOf(date.Weekday())
			entry := Entry{
				Date:     date,
				Weekday:  weekday.Display(name),
				Statuses: make(map[string]string, len(members)),
			}
			for _, m := range members {
				status := Classify(m, date)
				entry.Statuses[m.Name] = status
				if status == StatusWeekOff {
					counts[m.Name].WeekOffs++
				} else {
					// "No shift assigned" still counts as a working day.
					counts[m.Name].WorkingDays++
				}
			}
			entries = append(entries, entry)
		}

		for _, m := range members {
			summaries[m.Name][label] = *counts[m.Name]
		}
	}
	return entries, summaries
}

// Classify returns the status of one member on one date: the member's
// primary shift label, StatusWeekOff, or StatusNoShift. Matching against
// off-days is case-insensitive and whitespace-trimmed; malformed off-day
// entries never match.
func Classify(m member.Member, date time.Time) string {
	if m.IsOffOn(weekday.NameOf(date.Weekday())) {
		return StatusWeekOff
	}
	if shift := m.PrimaryShift(); shift != "" {
		return shift
	}
	return StatusNoShift
}
