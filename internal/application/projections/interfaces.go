package projections

import (
	"context"

	domainMember "rosterplan/internal/domain/member"
	"rosterplan/internal/domain/weekday"
)

// RosterStore interface for roster queries.
type RosterStore interface {
	List(ctx context.Context) ([]domainMember.Member, error)
}

// CycleStore interface for week-cycle queries.
type CycleStore interface {
	GetCycle(ctx context.Context) (weekday.Cycle, error)
}
