package projections_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"rosterplan/internal/application/projections"
	"rosterplan/internal/domain/member"
	"rosterplan/internal/domain/month"
	"rosterplan/internal/domain/schedule"
	"rosterplan/internal/domain/weekday"
)

// mockRosterStore is an in-memory read store for projection tests.
type mockRosterStore struct {
	members []member.Member
	cycle   weekday.Cycle
}

// List implements the mock RosterStore for testing.
func (s *mockRosterStore) List(ctx context.Context) ([]member.Member, error) {
	return s.members, nil
}

// GetCycle implements the mock CycleStore for testing.
func (s *mockRosterStore) GetCycle(ctx context.Context) (weekday.Cycle, error) {
	if s.cycle.Start == "" {
		return weekday.Cycle{Start: weekday.Sunday}, nil
	}
	return s.cycle, nil
}

func aliceStore() *mockRosterStore {
	return &mockRosterStore{members: []member.Member{
		{Name: "Alice", Shifts: []string{"9-5"}, WeekOffs: []string{"Saturday", "Sunday"}},
		{Name: "Bob"},
	}}
}

// TestQueryGetSchedule tests derivation through the read side.
func TestQueryGetSchedule(t *testing.T) {
	store := aliceStore()
	res, err := projections.QueryGetSchedule(context.Background(), projections.GetScheduleQuery{
		Months: []string{"January"},
		Year:   2024,
	}, projections.GetScheduleDeps{RosterStore: store})
	if err != nil {
		t.Fatalf("QueryGetSchedule error = %v", err)
	}

	if len(res.Entries) != 31 {
		t.Fatalf("len(Entries) = %d, want 31", len(res.Entries))
	}
	if !reflect.DeepEqual(res.MemberNames, []string{"Alice", "Bob"}) {
		t.Errorf("MemberNames = %v, want roster order", res.MemberNames)
	}
	sum := res.Summaries["Alice"]["January 2024"]
	if sum.WorkingDays != 23 || sum.WeekOffs != 8 {
		t.Errorf("Alice summary = %d/%d, want 23/8", sum.WorkingDays, sum.WeekOffs)
	}
}

// TestQueryGetSchedule_InvalidMonth tests boundary validation.
func TestQueryGetSchedule_InvalidMonth(t *testing.T) {
	_, err := projections.QueryGetSchedule(context.Background(), projections.GetScheduleQuery{
		Months: []string{"Smarch"},
		Year:   2024,
	}, projections.GetScheduleDeps{RosterStore: aliceStore()})
	if !errors.Is(err, month.ErrInvalidMonth) {
		t.Fatalf("error = %v, want ErrInvalidMonth", err)
	}
}

// TestQueryGetSchedule_EmptyInputs tests total behavior without months
// or members; the warning belongs to the HTTP layer.
func TestQueryGetSchedule_EmptyInputs(t *testing.T) {
	res, err := projections.QueryGetSchedule(context.Background(), projections.GetScheduleQuery{Year: 2024},
		projections.GetScheduleDeps{RosterStore: aliceStore()})
	if err != nil {
		t.Fatalf("no months: error = %v", err)
	}
	if len(res.Entries) != 0 {
		t.Errorf("no months: len(Entries) = %d, want 0", len(res.Entries))
	}

	res, err = projections.QueryGetSchedule(context.Background(), projections.GetScheduleQuery{
		Months: []string{"January"},
		Year:   2024,
	}, projections.GetScheduleDeps{RosterStore: &mockRosterStore{}})
	if err != nil {
		t.Fatalf("empty roster: error = %v", err)
	}
	if len(res.MemberNames) != 0 || len(res.Summaries) != 0 {
		t.Errorf("empty roster: result = %+v, want no members", res)
	}
}

// TestQueryWhoWorksOn tests the single-date filter through the read side.
func TestQueryWhoWorksOn(t *testing.T) {
	saturday := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	res, err := projections.QueryWhoWorksOn(context.Background(), projections.WhoWorksOnQuery{Date: saturday},
		projections.WhoWorksOnDeps{RosterStore: aliceStore()})
	if err != nil {
		t.Fatalf("QueryWhoWorksOn error = %v", err)
	}
	if res.Weekday != "Saturday" {
		t.Errorf("Weekday = %q, want Saturday", res.Weekday)
	}
	if !reflect.DeepEqual(res.Working, []string{"Bob"}) {
		t.Errorf("Working = %v, want [Bob]", res.Working)
	}
}

// TestQueryGetRoster tests the listing with the stored cycle.
func TestQueryGetRoster(t *testing.T) {
	store := aliceStore()
	store.cycle = weekday.Cycle{Start: weekday.Monday}

	res, err := projections.QueryGetRoster(context.Background(), projections.GetRosterDeps{
		RosterStore: store,
		CycleStore:  store,
	})
	if err != nil {
		t.Fatalf("QueryGetRoster error = %v", err)
	}
	if len(res.Members) != 2 || res.Members[0].Name != "Alice" {
		t.Errorf("Members = %+v", res.Members)
	}
	if res.CycleStart != "Monday" || res.CycleEnd != "Sunday" {
		t.Errorf("cycle = %s..%s, want Monday..Sunday", res.CycleStart, res.CycleEnd)
	}
}

// TestQueryGetSchedule_StatusShape spot-checks a derived entry rather than
// re-proving the engine, which has its own tests.
func TestQueryGetSchedule_StatusShape(t *testing.T) {
	res, err := projections.QueryGetSchedule(context.Background(), projections.GetScheduleQuery{
		Months: []string{"january"},
		Year:   2024,
	}, projections.GetScheduleDeps{RosterStore: aliceStore()})
	if err != nil {
		t.Fatalf("QueryGetSchedule error = %v", err)
	}
	first := res.Entries[0]
	if first.Statuses["Alice"] != "9-5" || first.Statuses["Bob"] != schedule.StatusNoShift {
		t.Errorf("first statuses = %v", first.Statuses)
	}
}
