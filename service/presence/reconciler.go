// Package presence implements the client-side month presence workflow:
// reconciling sparse backend records into a gap-free month view, tracking
// local edits and completeness, building submission payloads and driving the
// per-day editing lifecycle.
package presence

import (
	"time"

	"github.com/presenza-app/presence-client-go/domain/holiday"
	"github.com/presenza-app/presence-client-go/domain/presence"
	"github.com/presenza-app/presence-client-go/pkg/datekey"
)

// ReconcileInput gathers everything a month rebuild needs. Records is the
// sparse fetch result; Holidays is the year's holiday set keyed by date;
// PreviousLocal, when set, is the outgoing view whose locally edited days
// survive the rebuild.
type ReconcileInput struct {
	EmployeeID    string
	Year          int
	Month         time.Month
	Records       []presence.DayRecord
	Holidays      holiday.Set
	PreviousLocal *presence.MonthView
}

// ReconcileMonth merges fetched records, the holiday set and weekend
// derivation into a complete MonthView holding exactly one DayRecord per
// calendar day of the month, in ascending date order.
//
// Days with a fetched record keep its field values and get HasData set; days
// without one are blank placeholders. The national holiday flag is the OR of
// the record's own flag and holiday set membership, so a day flagged either
// way stays flagged. No default hours are applied here; filling blank days
// is an explicit user action.
func ReconcileMonth(in ReconcileInput) (*presence.MonthView, error) {
	if in.Year == 0 || in.Month == 0 {
		return nil, presence.ErrMonthNotSelected
	}

	byDate := make(map[string]presence.DayRecord, len(in.Records))
	for _, rec := range in.Records {
		key := datekey.Clean(rec.Date)
		rec.Date = key
		byDate[key] = rec
	}

	view := &presence.MonthView{
		EmployeeID: in.EmployeeID,
		Year:       in.Year,
		Month:      in.Month,
		Days:       make([]presence.DayRecord, 0, datekey.DaysInMonth(in.Year, in.Month)),
	}

	for day := 1; day <= datekey.DaysInMonth(in.Year, in.Month); day++ {
		key := datekey.Of(in.Year, in.Month, day)

		if in.PreviousLocal != nil {
			if prev := in.PreviousLocal.Day(key); prev != nil && prev.Modified {
				view.Days = append(view.Days, *prev)
				continue
			}
		}

		rec, fetched := byDate[key]
		rec.Date = key
		rec.EmployeeID = in.EmployeeID
		rec.Weekend = datekey.IsWeekend(in.Year, in.Month, day)
		rec.NationalHoliday = rec.NationalHoliday || in.Holidays.Contains(key)
		rec.HasData = fetched
		rec.Modified = false

		view.Days = append(view.Days, rec)
	}

	return view, nil
}
