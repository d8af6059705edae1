package orchestrators

import (
	"context"

	"rosterplan/internal/domain/member"
)

// SetShiftAndOffsInput carries input for the orchestrator.
type SetShiftAndOffsInput struct {
	Name     string
	Shift    string
	WeekOffs []string
}

// SetShiftAndOffsDeps holds dependencies for SetShiftAndOffs.
type SetShiftAndOffsDeps struct {
	RosterStore RosterStore
}

// ExecuteSetShiftAndOffs assigns a shift and off-day candidates to an
// enrolled member. The shift is appended if absent; off-days are deduped
// and capped at two, keeping insertion order. Unknown weekday strings are
// stored as inert data.
// PRE: member must already be enrolled
// POST: Updated member persisted, or roster.ErrNotFound
func ExecuteSetShiftAndOffs(ctx context.Context, input SetShiftAndOffsInput, deps SetShiftAndOffsDeps) (member.Member, error) {
	m, err := deps.RosterStore.GetByName(ctx, input.Name)
	if err != nil {
		return member.Member{}, err
	}

	m.AddShift(input.Shift)
	m.AddWeekOffs(input.WeekOffs...)

	if err := deps.RosterStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}
	return m, nil
}
