package schedule_test

import (
	"reflect"
	"testing"
	"time"

	"rosterplan/internal/domain/month"
	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/schedule"
)

func mustTarget(t *testing.T, name string, year int) month.Target {
	t.Helper()
	target, err := month.NewTarget(name, year)
	if err != nil {
		t.Fatalf("NewTarget(%q, %d) error = %v", name, year, err)
	}
	return target
}

// aliceRoster builds the reference roster: Alice, 9-5, weekends off.
func aliceRoster(t *testing.T) *roster.Roster {
	t.Helper()
	r := roster.New()
	if _, err := r.AddMember("Alice"); err != nil {
		t.Fatalf("AddMember error = %v", err)
	}
	if _, err := r.SetShiftAndOffs("Alice", "9-5", []string{"Saturday", "Sunday"}); err != nil {
		t.Fatalf("SetShiftAndOffs error = %v", err)
	}
	return r
}

// TestDerive_JanuaryScenario pins the concrete January 2024 oracle:
// 31 rows, Monday the 1st works, Saturday the 6th is off, 23/8 totals.
func TestDerive_JanuaryScenario(t *testing.T) {
	r := aliceRoster(t)
	entries, summaries := schedule.Derive(r, []month.Target{mustTarget(t, "January", 2024)})

	if len(entries) != 31 {
		t.Fatalf("len(entries) = %d, want 31", len(entries))
	}

	first := entries[0]
	if first.Weekday != "Monday" {
		t.Errorf("2024-01-01 weekday = %q, want Monday", first.Weekday)
	}
	if got := first.Statuses["Alice"]; got != "9-5" {
		t.Errorf("2024-01-01 status = %q, want shift label", got)
	}

	sixth := entries[5]
	if sixth.Date.Day() != 6 || sixth.Weekday != "Saturday" {
		t.Fatalf("entries[5] = %v %q, want 2024-01-06 Saturday", sixth.Date, sixth.Weekday)
	}
	if got := sixth.Statuses["Alice"]; got != schedule.StatusWeekOff {
		t.Errorf("2024-01-06 status = %q, want %q", got, schedule.StatusWeekOff)
	}

	sum := summaries["Alice"]["January 2024"]
	if sum.WorkingDays != 23 || sum.WeekOffs != 8 {
		t.Errorf("summary = %d working / %d off, want 23/8", sum.WorkingDays, sum.WeekOffs)
	}
	if sum.ShiftTiming != "9-5" {
		t.Errorf("ShiftTiming = %q, want 9-5", sum.ShiftTiming)
	}
}

// TestDerive_TotalsInvariant checks working + off == days in month for
// every member and month, including one with no shift assigned.
func TestDerive_TotalsInvariant(t *testing.T) {
	r := roster.New()
	r.AddMember("Alice")
	r.AddMember("Bob") // no shift, no offs
	r.SetShiftAndOffs("Alice", "9-5", []string{"Wednesday"})

	targets := []month.Target{
		mustTarget(t, "January", 2024),
		mustTarget(t, "February", 2024), // leap month, 29 days
		mustTarget(t, "April", 2023),
	}
	_, summaries := schedule.Derive(r, targets)

	for _, target := range targets {
		for _, name := range r.Names() {
			sum := summaries[name][target.Label()]
			if got := sum.WorkingDays + sum.WeekOffs; got != target.Days() {
				t.Errorf("%s %s: working %d + off %d = %d, want %d",
					name, target.Label(), sum.WorkingDays, sum.WeekOffs, got, target.Days())
			}
		}
	}

	// Bob has no shift: every day is "No shift assigned" and counts as working.
	bob := summaries["Bob"]["February 2024"]
	if bob.WorkingDays != 29 || bob.WeekOffs != 0 {
		t.Errorf("Bob February 2024 = %d/%d, want 29/0", bob.WorkingDays, bob.WeekOffs)
	}
}

// TestDerive_NoShiftStatus checks the placeholder status for unassigned members.
func TestDerive_NoShiftStatus(t *testing.T) {
	r := roster.New()
	r.AddMember("Bob")
	entries, _ := schedule.Derive(r, []month.Target{mustTarget(t, "March", 2024)})
	if got := entries[0].Statuses["Bob"]; got != schedule.StatusNoShift {
		t.Errorf("status = %q, want %q", got, schedule.StatusNoShift)
	}
}

// TestDerive_CaseInsensitiveOffDays checks that padded, mixed-case off-day
// entries classify identically to canonical ones.
func TestDerive_CaseInsensitiveOffDays(t *testing.T) {
	r := roster.New()
	r.AddMember("Alice")
	r.SetShiftAndOffs("Alice", "9-5", []string{" saturday ", "SUNDAY"})

	entries, summaries := schedule.Derive(r, []month.Target{mustTarget(t, "January", 2024)})
	if got := entries[5].Statuses["Alice"]; got != schedule.StatusWeekOff {
		t.Errorf("2024-01-06 status = %q, want Week Off for padded entry", got)
	}
	sum := summaries["Alice"]["January 2024"]
	if sum.WeekOffs != 8 {
		t.Errorf("WeekOffs = %d, want 8", sum.WeekOffs)
	}
}

// TestDerive_UnknownOffDayInert checks that a malformed off-day never
// matches any date and inflates no count.
func TestDerive_UnknownOffDayInert(t *testing.T) {
	r := roster.New()
	r.AddMember("Alice")
	r.SetShiftAndOffs("Alice", "9-5", []string{"Funday"})

	target := mustTarget(t, "January", 2024)
	_, summaries := schedule.Derive(r, []month.Target{target})
	sum := summaries["Alice"][target.Label()]
	if sum.WorkingDays != target.Days() || sum.WeekOffs != 0 {
		t.Errorf("summary = %d/%d, want %d/0 for inert off-day", sum.WorkingDays, sum.WeekOffs, target.Days())
	}
}

// TestDerive_Idempotent checks that repeated derivation over an unmutated
// roster yields identical output.
func TestDerive_Idempotent(t *testing.T) {
	r := aliceRoster(t)
	targets := []month.Target{mustTarget(t, "January", 2024), mustTarget(t, "February", 2024)}

	entries1, summaries1 := schedule.Derive(r, targets)
	entries2, summaries2 := schedule.Derive(r, targets)

	if !reflect.DeepEqual(entries1, entries2) {
		t.Error("entries differ between identical derivations")
	}
	if !reflect.DeepEqual(summaries1, summaries2) {
		t.Error("summaries differ between identical derivations")
	}
}

// TestDerive_MonthIndependence checks that a month's summary does not
// depend on which other months share the request.
func TestDerive_MonthIndependence(t *testing.T) {
	r := aliceRoster(t)
	march := mustTarget(t, "March", 2024)

	_, alone := schedule.Derive(r, []month.Target{march})
	_, combined := schedule.Derive(r, []month.Target{mustTarget(t, "February", 2024), march})

	if !reflect.DeepEqual(alone["Alice"][march.Label()], combined["Alice"][march.Label()]) {
		t.Errorf("March summary differs: alone %+v, combined %+v",
			alone["Alice"][march.Label()], combined["Alice"][march.Label()])
	}
}

// TestDerive_Empty checks total behavior on empty inputs.
func TestDerive_Empty(t *testing.T) {
	entries, summaries := schedule.Derive(roster.New(), []month.Target{mustTarget(t, "January", 2024)})
	if len(entries) != 31 {
		t.Errorf("empty roster: len(entries) = %d, want 31 dated rows with no statuses", len(entries))
	}
	if len(summaries) != 0 {
		t.Errorf("empty roster: summaries = %v, want empty", summaries)
	}

	entries, _ = schedule.Derive(aliceRoster(t), nil)
	if len(entries) != 0 {
		t.Errorf("no targets: len(entries) = %d, want 0", len(entries))
	}
}

// TestDerive_ChronologicalOrder checks ascending dates across months in
// request order.
func TestDerive_ChronologicalOrder(t *testing.T) {
	r := aliceRoster(t)
	entries, _ := schedule.Derive(r, []month.Target{
		mustTarget(t, "January", 2024),
		mustTarget(t, "February", 2024),
	})
	if len(entries) != 31+29 {
		t.Fatalf("len(entries) = %d, want 60", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not ascending at index %d: %v then %v", i, entries[i-1].Date, entries[i].Date)
		}
	}
	if entries[31].Date != time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("entries[31].Date = %v, want 2024-02-01", entries[31].Date)
	}
}
