package projections

import (
	"context"

	"rosterplan/internal/domain/weekday"
)

// RosterMember is one member row for listing views.
type RosterMember struct {
	Name     string
	Shifts   []string
	WeekOffs []string
}

// GetRosterResult carries the current roster and week cycle.
type GetRosterResult struct {
	Members    []RosterMember
	CycleStart string // capitalized, e.g. "Sunday"
	CycleEnd   string
}

// GetRosterDeps holds dependencies for GetRoster.
type GetRosterDeps struct {
	RosterStore RosterStore
	CycleStore  CycleStore
}

// QueryGetRoster lists enrolled members in enrollment order together with
// the selected week cycle.
func QueryGetRoster(ctx context.Context, deps GetRosterDeps) (GetRosterResult, error) {
	members, err := deps.RosterStore.List(ctx)
	if err != nil {
		return GetRosterResult{}, err
	}
	cycle, err := deps.CycleStore.GetCycle(ctx)
	if err != nil {
		return GetRosterResult{}, err
	}

	result := GetRosterResult{
		CycleStart: weekday.Display(cycle.Start),
		CycleEnd:   weekday.Display(cycle.End()),
	}
	for _, m := range members {
		result.Members = append(result.Members, RosterMember{
			Name:     m.Name,
			Shifts:   m.Shifts,
			WeekOffs: m.WeekOffs,
		})
	}
	return result, nil
}
