package roster

import (
	"context"

	domain "rosterplan/internal/domain/member"
	"rosterplan/internal/domain/weekday"
)

// Store persists the roster's Member state.
type Store interface {
	GetByName(ctx context.Context, name string) (domain.Member, error)
	Save(ctx context.Context, value domain.Member) error
	List(ctx context.Context) ([]domain.Member, error)
}

// CycleStore persists the selected week-start convention.
type CycleStore interface {
	SaveCycle(ctx context.Context, c weekday.Cycle) error
	GetCycle(ctx context.Context) (weekday.Cycle, error)
}
