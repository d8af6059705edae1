package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"rosterplan/internal/application/orchestrators"
	"rosterplan/internal/application/projections"
	"rosterplan/internal/domain/export"
	"rosterplan/internal/domain/month"
	"rosterplan/internal/domain/roster"
	"rosterplan/internal/domain/schedule"
	"rosterplan/internal/domain/weekday"
)

// dateLayout is the wire format for dates in requests and responses.
const dateLayout = "2006-01-02"

// registerRoutes attaches all handlers to the mux.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /help", handleHelp)

	mux.HandleFunc("POST /api/members", handleAddMember)
	mux.HandleFunc("GET /api/members", handleGetRoster)
	mux.HandleFunc("PUT /api/members", handleUpdateMember)
	mux.HandleFunc("POST /api/members/shift", handleSetShift)

	mux.HandleFunc("GET /api/week-cycle", handleGetWeekCycle)
	mux.HandleFunc("PUT /api/week-cycle", handleSetWeekCycle)

	mux.HandleFunc("GET /api/schedule", handleGetSchedule)
	mux.HandleFunc("GET /api/schedule/export", handleExportSchedule)

	mux.HandleFunc("GET /api/leave/check", handleLeaveCheck)
	mux.HandleFunc("POST /api/leave/approve", handleApproveLeave)
}

// internalError logs the real error and returns a generic message to the
// client so internals never leak.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// strictDecode decodes JSON from the request body, rejecting unknown fields.
func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode_response", "error", err.Error())
	}
}

// writeError maps domain errors to status codes and a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrInvalidInput),
		errors.Is(err, weekday.ErrInvalidDay),
		errors.Is(err, month.ErrInvalidMonth),
		errors.Is(err, month.ErrInvalidYear):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, roster.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		internalError(w, err)
	}
}

// memberJSON is the wire shape of one roster member.
type memberJSON struct {
	Name     string   `json:"name"`
	Shifts   []string `json:"shifts"`
	WeekOffs []string `json:"week_offs"`
}

// handleHealthz handles GET /healthz.
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAddMember handles POST /api/members.
func handleAddMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	m, err := orchestrators.ExecuteAddMember(r.Context(),
		orchestrators.AddMemberInput{Name: req.Name},
		orchestrators.AddMemberDeps{RosterStore: stores.RosterStore},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"name":    m.Name,
		"message": fmt.Sprintf("%s added to the team", m.Name),
	})
}

// handleGetRoster handles GET /api/members.
func handleGetRoster(w http.ResponseWriter, r *http.Request) {
	res, err := projections.QueryGetRoster(r.Context(), projections.GetRosterDeps{
		RosterStore: stores.RosterStore,
		CycleStore:  stores.CycleStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}

	members := make([]memberJSON, 0, len(res.Members))
	for _, m := range res.Members {
		members = append(members, memberJSON{Name: m.Name, Shifts: m.Shifts, WeekOffs: m.WeekOffs})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members":          members,
		"week_cycle_start": res.CycleStart,
		"week_cycle_end":   res.CycleEnd,
	})
}

// handleSetShift handles POST /api/members/shift.
func handleSetShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Shift    string   `json:"shift"`
		WeekOffs []string `json:"week_offs"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	m, err := orchestrators.ExecuteSetShiftAndOffs(r.Context(),
		orchestrators.SetShiftAndOffsInput{Name: req.Name, Shift: req.Shift, WeekOffs: req.WeekOffs},
		orchestrators.SetShiftAndOffsDeps{RosterStore: stores.RosterStore},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member":  memberJSON{Name: m.Name, Shifts: m.Shifts, WeekOffs: m.WeekOffs},
		"message": fmt.Sprintf("shift and week off set for %s", m.Name),
	})
}

// handleUpdateMember handles PUT /api/members.
func handleUpdateMember(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Shift    string   `json:"shift"`
		WeekOffs []string `json:"week_offs"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	m, err := orchestrators.ExecuteUpdateMember(r.Context(),
		orchestrators.UpdateMemberInput{Name: req.Name, NewShift: req.Shift, WeekOffs: req.WeekOffs},
		orchestrators.UpdateMemberDeps{RosterStore: stores.RosterStore},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"member": memberJSON{Name: m.Name, Shifts: m.Shifts, WeekOffs: m.WeekOffs},
	})
}

// handleGetWeekCycle handles GET /api/week-cycle.
func handleGetWeekCycle(w http.ResponseWriter, r *http.Request) {
	c, err := stores.CycleStore.GetCycle(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"start": weekday.Display(c.Start),
		"end":   weekday.Display(c.End()),
	})
}

// handleSetWeekCycle handles PUT /api/week-cycle.
func handleSetWeekCycle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Start string `json:"start"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	c, err := orchestrators.ExecuteSetWeekCycle(r.Context(),
		orchestrators.SetWeekCycleInput{Start: req.Start},
		orchestrators.SetWeekCycleDeps{CycleStore: stores.CycleStore},
	)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"start": weekday.Display(c.Start),
		"end":   weekday.Display(c.End()),
	})
}

// scheduleQuery parses and precondition-checks a schedule request. The
// warnings mirror the planner's banners: months and members must both be
// selected before a schedule makes sense.
func scheduleQuery(r *http.Request) (projections.GetScheduleResult, string, error) {
	q := r.URL.Query()
	months := q["months"]
	if len(months) == 0 {
		return projections.GetScheduleResult{}, "select at least one month", nil
	}

	year := time.Now().Year()
	if v := q.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return projections.GetScheduleResult{}, "", month.ErrInvalidYear
		}
		year = n
	}

	res, err := projections.QueryGetSchedule(r.Context(), projections.GetScheduleQuery{
		Months: months,
		Year:   year,
	}, projections.GetScheduleDeps{RosterStore: stores.RosterStore})
	if err != nil {
		return projections.GetScheduleResult{}, "", err
	}
	if len(res.MemberNames) == 0 {
		return res, "add team members first", nil
	}
	return res, "", nil
}

// entryJSON is the wire shape of one derived schedule day.
type entryJSON struct {
	Date     string            `json:"date"`
	Day      string            `json:"day"`
	Statuses map[string]string `json:"statuses"`
}

// handleGetSchedule handles GET /api/schedule?months=January&months=February&year=2024.
func handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	res, warning, err := scheduleQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if warning != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"warning": warning})
		return
	}

	entries := make([]entryJSON, 0, len(res.Entries))
	for _, e := range res.Entries {
		entries = append(entries, entryJSON{
			Date:     e.Date.Format(dateLayout),
			Day:      e.Weekday,
			Statuses: e.Statuses,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"members":   res.MemberNames,
		"entries":   entries,
		"summaries": res.Summaries,
	})
}

// handleExportSchedule handles GET /api/schedule/export with the same query
// parameters as /api/schedule, streaming CSV.
func handleExportSchedule(w http.ResponseWriter, r *http.Request) {
	res, warning, err := scheduleQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if warning != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"warning": warning})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="schedule.csv"`)
	if err := export.WriteSchedule(w, res.Entries, res.MemberNames); err != nil {
		slog.Error("export_schedule", "error", err.Error())
	}
}

// handleLeaveCheck handles GET /api/leave/check?date=2024-01-06.
func handleLeaveCheck(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.URL.Query().Get("date"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	res, err := projections.QueryWhoWorksOn(r.Context(), projections.WhoWorksOnQuery{Date: date},
		projections.WhoWorksOnDeps{RosterStore: stores.RosterStore})
	if err != nil {
		internalError(w, err)
		return
	}

	body := map[string]any{
		"date":    date.Format(dateLayout),
		"day":     res.Weekday,
		"working": res.Working,
	}
	if len(res.Working) == 0 {
		body["message"] = fmt.Sprintf("all team members are off on %s", res.Weekday)
	}
	writeJSON(w, http.StatusOK, body)
}

// handleApproveLeave handles POST /api/leave/approve. Approval is
// transient: the work set is recomputed and filtered, the roster is never
// written.
func handleApproveLeave(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
		Date string `json:"date"`
	}
	if err := strictDecode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	res, err := orchestrators.ExecuteApproveLeave(r.Context(),
		orchestrators.ApproveLeaveInput{Name: req.Name, Date: date},
		orchestrators.ApproveLeaveDeps{RosterStore: stores.RosterStore},
	)
	if errors.Is(err, schedule.ErrNotScheduled) {
		// A member already off that day gets a warning, not a failure.
		writeJSON(w, http.StatusOK, map[string]any{
			"warning": fmt.Sprintf("%s is not scheduled to work on this date", req.Name),
			"working": res.Remaining,
		})
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("leave approved for %s", req.Name),
		"working": res.Remaining,
	})
}
