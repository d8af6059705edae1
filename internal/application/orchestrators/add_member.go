package orchestrators

import (
	"context"
	"fmt"

	"rosterplan/internal/domain/member"
	"rosterplan/internal/domain/roster"
)

// RosterStore defines the interface for roster persistence.
type RosterStore interface {
	GetByName(ctx context.Context, name string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
	List(ctx context.Context) ([]member.Member, error)
}

// AddMemberInput carries input for the orchestrator.
type AddMemberInput struct {
	Name string
}

// AddMemberDeps holds dependencies for AddMember.
type AddMemberDeps struct {
	RosterStore RosterStore
}

// ExecuteAddMember enrolls a member with empty shifts and off-days.
// Re-adding an existing name resets that member rather than merging.
// PRE: Name may be arbitrary user input
// POST: Member persisted fresh, or ErrInvalidInput for an empty name
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps AddMemberDeps) (member.Member, error) {
	m, err := member.New(input.Name)
	if err != nil {
		return member.Member{}, fmt.Errorf("%w: %v", roster.ErrInvalidInput, err)
	}
	if err := deps.RosterStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}
	return m, nil
}
