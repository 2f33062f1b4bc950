package presence

import (
	"github.com/presenza-app/presence-client-go/domain/presence"
	"github.com/presenza-app/presence-client-go/pkg/timefmt"
)

// Default hours template labels, in template order. Surfaced verbatim in
// MissingDefaultFieldsError.
const (
	labelMorningEntry   = "Morning Entry"
	labelMorningExit    = "Morning Exit"
	labelAfternoonEntry = "Afternoon Entry"
	labelAfternoonExit  = "Afternoon Exit"
)

// BuildSubmission converts a view into the wire payload for persistence: one
// entry per day, employee_id forced onto every entry, and empty time_off and
// extra_hours replaced with "00:00". The view is not mutated.
func BuildSubmission(view *presence.MonthView, employeeID string) []presence.Payload {
	payloads := make([]presence.Payload, 0, len(view.Days))
	for _, day := range view.Days {
		p := presence.Payload{
			Date:               day.Date,
			EmployeeID:         employeeID,
			EntryTimeMorning:   day.EntryTimeMorning,
			ExitTimeMorning:    day.ExitTimeMorning,
			EntryTimeAfternoon: day.EntryTimeAfternoon,
			ExitTimeAfternoon:  day.ExitTimeAfternoon,
			NationalHoliday:    day.NationalHoliday,
			Weekend:            day.Weekend,
			DayOff:             day.DayOff,
			TimeOff:            day.TimeOff,
			ExtraHours:         day.ExtraHours,
			Illness:            day.Illness,
			Notes:              day.Notes,
		}
		if p.TimeOff == "" {
			p.TimeOff = timefmt.Zero
		}
		if p.ExtraHours == "" {
			p.ExtraHours = timefmt.Zero
		}
		payloads = append(payloads, p)
	}
	return payloads
}

// ApplyDefaultHours writes the template's four time fields onto every day of
// the view, weekends and holidays included, marking each day modified. The
// operation is all-or-nothing: a template with any empty field is rejected
// with MissingDefaultFieldsError and the view is left untouched.
func ApplyDefaultHours(view *presence.MonthView, defaults presence.DefaultHours) error {
	var missing []string
	if defaults.EntryTimeMorning == "" {
		missing = append(missing, labelMorningEntry)
	}
	if defaults.ExitTimeMorning == "" {
		missing = append(missing, labelMorningExit)
	}
	if defaults.EntryTimeAfternoon == "" {
		missing = append(missing, labelAfternoonEntry)
	}
	if defaults.ExitTimeAfternoon == "" {
		missing = append(missing, labelAfternoonExit)
	}
	if len(missing) > 0 {
		return &presence.MissingDefaultFieldsError{Fields: missing}
	}

	for i := range view.Days {
		day := &view.Days[i]
		day.EntryTimeMorning = timefmt.Clip(defaults.EntryTimeMorning)
		day.ExitTimeMorning = timefmt.Clip(defaults.ExitTimeMorning)
		day.EntryTimeAfternoon = timefmt.Clip(defaults.EntryTimeAfternoon)
		day.ExitTimeAfternoon = timefmt.Clip(defaults.ExitTimeAfternoon)
		day.Modified = true
		day.HasData = true
	}
	return nil
}
