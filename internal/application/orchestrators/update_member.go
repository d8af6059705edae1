package orchestrators

import (
	"context"

	"rosterplan/internal/domain/member"
)

// UpdateMemberInput carries input for the orchestrator.
type UpdateMemberInput struct {
	Name     string
	NewShift string
	WeekOffs []string
}

// UpdateMemberDeps holds dependencies for UpdateMember.
type UpdateMemberDeps struct {
	RosterStore RosterStore
}

// ExecuteUpdateMember replaces an enrolled member's shift list with the
// single new label (when non-empty) and the off-days with up to two
// validated weekday names.
// PRE: member must already be enrolled
// POST: Updated member persisted, or roster.ErrNotFound
func ExecuteUpdateMember(ctx context.Context, input UpdateMemberInput, deps UpdateMemberDeps) (member.Member, error) {
	m, err := deps.RosterStore.GetByName(ctx, input.Name)
	if err != nil {
		return member.Member{}, err
	}

	m.ReplaceShift(input.NewShift)
	m.ReplaceWeekOffs(input.WeekOffs)

	if err := deps.RosterStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}
	return m, nil
}
