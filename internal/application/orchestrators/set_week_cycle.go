package orchestrators

import (
	"context"

	"rosterplan/internal/domain/weekday"
)

// CycleStore defines the interface for week-cycle persistence.
type CycleStore interface {
	SaveCycle(ctx context.Context, c weekday.Cycle) error
	GetCycle(ctx context.Context) (weekday.Cycle, error)
}

// SetWeekCycleInput carries input for the orchestrator.
type SetWeekCycleInput struct {
	Start string
}

// SetWeekCycleDeps holds dependencies for SetWeekCycle.
type SetWeekCycleDeps struct {
	CycleStore CycleStore
}

// ExecuteSetWeekCycle validates and stores the week-start selection.
// The cycle is display-only and never alters day classification.
// PRE: Start may be arbitrary user input
// POST: Cycle persisted, or weekday.ErrInvalidDay
func ExecuteSetWeekCycle(ctx context.Context, input SetWeekCycleInput, deps SetWeekCycleDeps) (weekday.Cycle, error) {
	c, err := weekday.NewCycle(input.Start)
	if err != nil {
		return weekday.Cycle{}, err
	}
	if err := deps.CycleStore.SaveCycle(ctx, c); err != nil {
		return weekday.Cycle{}, err
	}
	return c, nil
}
