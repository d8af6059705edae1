package projections

import (
	"context"
	"time"

	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/schedule"
	"rosterplan/internal/domain/weekday"
)

// WhoWorksOnQuery carries query parameters.
type WhoWorksOnQuery struct {
	Date time.Time
}

// WhoWorksOnResult carries the work set for one date.
type WhoWorksOnResult struct {
	Weekday string   // capitalized weekday of the date
	Working []string // member names in roster order
}

// WhoWorksOnDeps holds dependencies for WhoWorksOn.
type WhoWorksOnDeps struct {
	RosterStore RosterStore
}

// QueryWhoWorksOn lists the members scheduled to work on a date. An empty
// Working slice means everyone is off that day.
func QueryWhoWorksOn(ctx context.Context, query WhoWorksOnQuery, deps WhoWorksOnDeps) (WhoWorksOnResult, error) {
	members, err := deps.RosterStore.List(ctx)
	if err != nil {
		return WhoWorksOnResult{}, err
	}

	r := roster.FromMembers(members)
	return WhoWorksOnResult{
		Weekday: weekday.Display(weekday.NameOf(query.Date.Weekday())),
		Working: schedule.WhoWorksOn(r, query.Date),
	}, nil
}
