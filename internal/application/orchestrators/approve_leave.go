package orchestrators

import (
	"context"
	"time"

	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/schedule"
)

// ApproveLeaveInput carries input for the orchestrator.
type ApproveLeaveInput struct {
	Name string
	Date time.Time
}

// ApproveLeaveDeps holds dependencies for ApproveLeave.
type ApproveLeaveDeps struct {
	RosterStore RosterStore
}

// ApproveLeaveResult carries the transient outcome of a leave approval.
type ApproveLeaveResult struct {
	Remaining []string
}

// ExecuteApproveLeave recomputes who works on the given date and removes
// the named member from that set. The approval is ephemeral: the roster is
// read, never written.
// PRE: Date is any calendar date
// POST: Returns the remaining work set, or schedule.ErrNotScheduled when
// the member was already off that day
func ExecuteApproveLeave(ctx context.Context, input ApproveLeaveInput, deps ApproveLeaveDeps) (ApproveLeaveResult, error) {
	members, err := deps.RosterStore.List(ctx)
	if err != nil {
		return ApproveLeaveResult{}, err
	}

	workSet := schedule.WhoWorksOn(roster.FromMembers(members), input.Date)
	remaining, err := schedule.ApproveLeave(workSet, input.Name)
	if err != nil {
		return ApproveLeaveResult{Remaining: workSet}, err
	}
	return ApproveLeaveResult{Remaining: remaining}, nil
}
