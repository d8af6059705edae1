package web

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// helpMarkdown is the embedded usage guide rendered at /help.
const helpMarkdown = `# Team Roster Planner

Plan a team's monthly work schedule from weekly shift assignments.

## Workflow

1. **Pick a week start** — ` + "`PUT /api/week-cycle`" + ` with ` + "`{\"start\": \"Monday\"}`" + `.
   The week end is derived for display; it never changes day classification.
2. **Enroll members** — ` + "`POST /api/members`" + ` with ` + "`{\"name\": \"Alice\"}`" + `.
   Re-adding a name resets that member's shifts and week offs.
3. **Assign shifts and week offs** — ` + "`POST /api/members/shift`" + ` with
   ` + "`{\"name\": \"Alice\", \"shift\": \"9 AM - 5 PM\", \"week_offs\": [\"Saturday\", \"Sunday\"]}`" + `.
   Each member keeps at most two week offs; extra days are dropped.
4. **Derive the schedule** — ` + "`GET /api/schedule?months=January&months=February&year=2024`" + `.
   Every calendar day is classified per member: the shift label, ` + "`Week Off`" + `,
   or ` + "`No shift assigned`" + `. Monthly totals always sum to the days in the month.
5. **Export** — ` + "`GET /api/schedule/export?months=January&year=2024`" + ` downloads
   CSV with a ` + "`Date,Day,<member...>`" + ` header.

## Leave requests

- ` + "`GET /api/leave/check?date=2024-01-06`" + ` lists who works that day.
- ` + "`POST /api/leave/approve`" + ` removes a member from that day's work set.
  Approvals are transient: the roster itself is never modified.
`

var (
	helpOnce sync.Once
	helpHTML []byte
	helpErr  error
)

// handleHelp handles GET /help, serving the rendered usage guide.
func handleHelp(w http.ResponseWriter, r *http.Request) {
	helpOnce.Do(func() {
		var buf bytes.Buffer
		if helpErr = mdRenderer.Convert([]byte(helpMarkdown), &buf); helpErr == nil {
			helpHTML = buf.Bytes()
		}
	})
	if helpErr != nil {
		internalError(w, helpErr)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>Team Roster Planner</title></head><body>%s</body></html>", helpHTML)
}
