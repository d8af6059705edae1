package member

import (
	"errors"
	"strings"

	"rosterplan/internal/domain/weekday"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength = 100
)

// MaxWeekOffs caps the designated weekly off-days per member.
// Writes beyond the cap are silently dropped, oldest kept first.
const MaxWeekOffs = 2

// Domain errors
var (
	ErrEmptyName   = errors.New("member name cannot be empty")
	ErrNameTooLong = errors.New("member name cannot exceed 100 characters")
)

// Member holds one team member's roster state: an ordered list of shift
// labels and up to two weekly off-days. Off-days are stored as entered
// (trimmed) so that malformed values stay visible yet inert; comparison is
// always case-insensitive.
type Member struct {
	Name     string
	Shifts   []string
	WeekOffs []string
}

// New creates an empty Member with the given name.
// PRE: name may be arbitrary user input
// POST: Returns a Member with no shifts or off-days, or an error
func New(name string) (Member, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Member{}, ErrEmptyName
	}
	if len(trimmed) > MaxNameLength {
		return Member{}, ErrNameTooLong
	}
	return Member{Name: trimmed}, nil
}

// Validate checks if the Member has valid data.
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Name non-empty, at most MaxWeekOffs off-days
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(m.WeekOffs) > MaxWeekOffs {
		return errors.New("member cannot have more than 2 week offs")
	}
	return nil
}

// AddShift appends a shift label if it is non-empty and not already present.
// Empty labels are ignored rather than rejected: the shift field is optional
// on the combined shift-and-offs form.
func (m *Member) AddShift(label string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	for _, s := range m.Shifts {
		if s == trimmed {
			return
		}
	}
	m.Shifts = append(m.Shifts, trimmed)
}

// ReplaceShift discards all shift labels in favor of the single new one.
// An empty label leaves the existing shifts untouched.
func (m *Member) ReplaceShift(label string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return
	}
	m.Shifts = []string{trimmed}
}

// AddWeekOffs appends each candidate off-day not already present, then
// truncates to MaxWeekOffs keeping insertion order. Candidates are trimmed
// but not validated: unknown weekday strings are inert data that never
// match a real date.
func (m *Member) AddWeekOffs(days ...string) {
	for _, day := range days {
		trimmed := strings.TrimSpace(day)
		if trimmed == "" {
			continue
		}
		if m.IsOffOn(trimmed) {
			continue
		}
		m.WeekOffs = append(m.WeekOffs, trimmed)
	}
	if len(m.WeekOffs) > MaxWeekOffs {
		m.WeekOffs = m.WeekOffs[:MaxWeekOffs]
	}
}

// ReplaceWeekOffs swaps the off-day set for up to MaxWeekOffs validated
// weekday names. Invalid candidates are dropped: this is the validated
// update path, not the free-text one.
func (m *Member) ReplaceWeekOffs(days []string) {
	m.WeekOffs = nil
	for _, day := range days {
		canonical, err := weekday.Parse(day)
		if err != nil {
			continue
		}
		if m.IsOffOn(canonical) {
			continue
		}
		m.WeekOffs = append(m.WeekOffs, canonical)
		if len(m.WeekOffs) == MaxWeekOffs {
			break
		}
	}
}

// IsOffOn reports whether day matches one of the member's off-days,
// case-insensitively and whitespace-trimmed.
func (m *Member) IsOffOn(day string) bool {
	for _, off := range m.WeekOffs {
		if weekday.Equal(off, day) {
			return true
		}
	}
	return false
}

// PrimaryShift returns the first shift label for single-cell display,
// or "" if none is assigned.
func (m *Member) PrimaryShift() string {
	if len(m.Shifts) == 0 {
		return ""
	}
	return m.Shifts[0]
}

// ShiftSummary returns all shift labels joined for aggregate views.
func (m *Member) ShiftSummary() string {
	return strings.Join(m.Shifts, ", ")
}
