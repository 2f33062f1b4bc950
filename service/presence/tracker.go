package presence

import (
	"github.com/presenza-app/presence-client-go/domain/presence"
)

// IsDayModified compares a day against its fetched baseline, field by field
// over the per-day fields, including the holiday and weekend flags an admin
// may override. A nil baseline means the day never existed on the backend,
// so any current state counts as a local change.
func IsDayModified(baseline *presence.DayRecord, current presence.DayRecord) bool {
	if baseline == nil {
		return true
	}
	return baseline.EntryTimeMorning != current.EntryTimeMorning ||
		baseline.ExitTimeMorning != current.ExitTimeMorning ||
		baseline.EntryTimeAfternoon != current.EntryTimeAfternoon ||
		baseline.ExitTimeAfternoon != current.ExitTimeAfternoon ||
		baseline.NationalHoliday != current.NationalHoliday ||
		baseline.Weekend != current.Weekend ||
		baseline.DayOff != current.DayOff ||
		baseline.TimeOff != current.TimeOff ||
		baseline.ExtraHours != current.ExtraHours ||
		baseline.Illness != current.Illness ||
		baseline.Notes != current.Notes
}

// CompletionPolicy tunes what counts as a satisfied working day.
type CompletionPolicy struct {
	// AllowDayOff treats a day marked day_off as satisfied even without
	// entered or fetched data. Admin review uses this; self submission
	// does not.
	AllowDayOff bool
}

// IsMonthComplete reports whether every working day of the view is
// satisfied: weekends and national holidays always count, and any other day
// needs data (fetched or locally entered) or, under the policy, a day_off
// mark.
func IsMonthComplete(view *presence.MonthView, policy CompletionPolicy) bool {
	return len(MissingDates(view, policy)) == 0
}

// MissingDates returns the date keys of unsatisfied working days, in
// ascending order.
func MissingDates(view *presence.MonthView, policy CompletionPolicy) []string {
	var missing []string
	for i := range view.Days {
		day := &view.Days[i]
		if day.Weekend || day.NationalHoliday {
			continue
		}
		if day.HasData || day.Modified {
			continue
		}
		if policy.AllowDayOff && day.DayOff {
			continue
		}
		missing = append(missing, day.Date)
	}
	return missing
}
