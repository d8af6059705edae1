package export

import (
	"encoding/csv"
	"errors"
	"io"

	"rosterplan/internal/domain/schedule"
)

// DateLayout is the date format used in exported rows.
const DateLayout = "2006-01-02"

// Domain errors.
var (
	ErrNoEntries = errors.New("nothing to export")
)

// WriteSchedule serializes a derived schedule as delimited text: a header
// row of Date,Day,<member...> followed by one row per chronological entry.
// Column order follows memberNames (roster insertion order); status strings
// are written as-is.
// PRE: entries came from one Derive call; memberNames matches its roster
// POST: CSV written to w, or an error with nothing useful written
func WriteSchedule(w io.Writer, entries []schedule.Entry, memberNames []string) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	cw := csv.NewWriter(w)
	header := append([]string{"Date", "Day"}, memberNames...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for _, entry := range entries {
		row = row[:0]
		row = append(row, entry.Date.Format(DateLayout), entry.Weekday)
		for _, name := range memberNames {
			row = append(row, entry.Statuses[name])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
