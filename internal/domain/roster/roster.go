package roster

import (
	"errors"
	"strings"

	"rosterplan/internal/domain/member"
)

// Domain errors
var (
	ErrInvalidInput = errors.New("member name is required")
	ErrNotFound     = errors.New("member not found")
)

// Roster is the canonical team membership for one planning session: an
// insertion-ordered mapping from member name to roster state. All mutation
// goes through its operations; the schedule deriver only reads snapshots.
type Roster struct {
	members map[string]*member.Member
	order   []string
}

// New returns an empty Roster.
func New() *Roster {
	return &Roster{members: make(map[string]*member.Member)}
}

// FromMembers rebuilds a Roster from a stored member list, preserving order.
func FromMembers(ms []member.Member) *Roster {
	r := New()
	for _, m := range ms {
		cp := m
		if _, exists := r.members[cp.Name]; !exists {
			r.order = append(r.order, cp.Name)
		}
		r.members[cp.Name] = &cp
	}
	return r
}

// AddMember enrolls a member with empty shifts and off-days.
// Re-adding an existing name resets that member: insertion always
// overwrites, there is no merge.
// PRE: name may be arbitrary user input
// POST: Roster contains a fresh Member under the trimmed name
func (r *Roster) AddMember(name string) (member.Member, error) {
	m, err := member.New(name)
	if err != nil {
		return member.Member{}, ErrInvalidInput
	}
	if _, exists := r.members[m.Name]; !exists {
		r.order = append(r.order, m.Name)
	}
	r.members[m.Name] = &m
	return m, nil
}

// SetShiftAndOffs assigns a shift label (append-if-absent) and off-day
// candidates (deduped, capped at two, insertion order kept) to an existing
// member. Off-day candidates are free text: unknown weekday strings are
// stored as inert data.
// PRE: member must already be enrolled
// POST: Member updated in place; returns the updated copy
func (r *Roster) SetShiftAndOffs(name, shift string, offDays []string) (member.Member, error) {
	m, ok := r.members[strings.TrimSpace(name)]
	if !ok {
		return member.Member{}, ErrNotFound
	}
	m.AddShift(shift)
	m.AddWeekOffs(offDays...)
	return *m, nil
}

// UpdateMember replaces an existing member's shift list with the single new
// label (when non-empty) and the off-days with up to two validated weekday
// names.
// PRE: member must already be enrolled
// POST: Member updated in place; returns the updated copy
func (r *Roster) UpdateMember(name, newShift string, newOffDays []string) (member.Member, error) {
	m, ok := r.members[strings.TrimSpace(name)]
	if !ok {
		return member.Member{}, ErrNotFound
	}
	m.ReplaceShift(newShift)
	m.ReplaceWeekOffs(newOffDays)
	return *m, nil
}

// Get returns a copy of the named member.
func (r *Roster) Get(name string) (member.Member, bool) {
	m, ok := r.members[strings.TrimSpace(name)]
	if !ok {
		return member.Member{}, false
	}
	return *m, true
}

// Members returns copies of all members in insertion order.
func (r *Roster) Members() []member.Member {
	out := make([]member.Member, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, *r.members[name])
	}
	return out
}

// Names returns all member names in insertion order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of enrolled members.
func (r *Roster) Len() int {
	return len(r.order)
}
