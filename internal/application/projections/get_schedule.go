package projections

import (
	"context"

	"rosterplan/internal/domain/month"
	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/schedule"
)

// GetScheduleQuery carries query parameters.
type GetScheduleQuery struct {
	Months []string // free-text month names
	Year   int
}

// GetScheduleResult carries the derived schedule.
type GetScheduleResult struct {
	Entries     []schedule.Entry
	Summaries   schedule.Summaries
	MemberNames []string // roster order, fixes table and CSV column order
}

// GetScheduleDeps holds dependencies for GetSchedule.
type GetScheduleDeps struct {
	RosterStore RosterStore
}

// QueryGetSchedule derives the day-by-day table and monthly summaries for
// the requested months. Month names are validated here at the input
// boundary; an empty roster or empty month list yields an empty result,
// leaving the warning to the caller.
// PRE: Months may be free-text user input
// POST: Returns the derived schedule, or a month/year validation error
func QueryGetSchedule(ctx context.Context, query GetScheduleQuery, deps GetScheduleDeps) (GetScheduleResult, error) {
	targets := make([]month.Target, 0, len(query.Months))
	for _, name := range query.Months {
		target, err := month.NewTarget(name, query.Year)
		if err != nil {
			return GetScheduleResult{}, err
		}
		targets = append(targets, target)
	}

	members, err := deps.RosterStore.List(ctx)
	if err != nil {
		return GetScheduleResult{}, err
	}

	r := roster.FromMembers(members)
	entries, summaries := schedule.Derive(r, targets)
	return GetScheduleResult{
		Entries:     entries,
		Summaries:   summaries,
		MemberNames: r.Names(),
	}, nil
}
