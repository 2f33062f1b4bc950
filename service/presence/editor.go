package presence

import (
	"github.com/presenza-app/presence-client-go/domain/presence"
	"github.com/presenza-app/presence-client-go/pkg/timefmt"
)

// TimeField identifies one of the editable time-of-day fields of a day.
type TimeField string

const (
	FieldEntryMorning   TimeField = "entry_time_morning"
	FieldExitMorning    TimeField = "exit_time_morning"
	FieldEntryAfternoon TimeField = "entry_time_afternoon"
	FieldExitAfternoon  TimeField = "exit_time_afternoon"
	FieldTimeOff        TimeField = "time_off"
	FieldExtraHours     TimeField = "extra_hours"
)

// WarnFunc receives a warning when a time field's content turns invalid
// while typing. It fires at most once per excursion into invalid state; the
// field must become valid again before another warning can fire.
type WarnFunc func(field TimeField, value string)

// Editor drives the edit lifecycle of a single day: it works on a copy, so
// nothing is visible on the day until Close commits. Invalid time fields are
// reverted to their pre-edit values at close; valid edits are kept and the
// day is marked modified.
type Editor struct {
	target   *presence.DayRecord
	baseline presence.DayRecord
	working  presence.DayRecord
	invalid  map[TimeField]bool
	onWarn   WarnFunc
}

// NewEditor opens an editor over the given day. onWarn may be nil.
func NewEditor(day *presence.DayRecord, onWarn WarnFunc) *Editor {
	return &Editor{
		target:   day,
		baseline: *day,
		working:  *day,
		invalid:  make(map[TimeField]bool),
		onWarn:   onWarn,
	}
}

// SetTime applies raw keyboard input to a time field. The input is
// auto-formatted (digits get a colon inserted, separators are normalized)
// and the formatted value is stored and returned so the caller can echo it
// back into the input widget.
func (e *Editor) SetTime(field TimeField, input string) string {
	formatted := timefmt.FormatInput(input)
	*timeFieldRef(&e.working, field) = formatted

	if timefmt.IsValid(formatted) {
		e.invalid[field] = false
	} else {
		if !e.invalid[field] && e.onWarn != nil {
			e.onWarn(field, formatted)
		}
		e.invalid[field] = true
	}
	return formatted
}

// SetDayOff toggles the day off flag on the working copy.
func (e *Editor) SetDayOff(v bool) { e.working.DayOff = v }

// SetNationalHoliday overrides the holiday flag on the working copy. The
// reconciled flag is only a starting point; a day may be marked or unmarked
// per record.
func (e *Editor) SetNationalHoliday(v bool) { e.working.NationalHoliday = v }

// SetWeekend overrides the derived weekend flag on the working copy.
func (e *Editor) SetWeekend(v bool) { e.working.Weekend = v }

// SetIllness updates the illness note on the working copy.
func (e *Editor) SetIllness(v string) { e.working.Illness = v }

// SetNotes updates the free-form notes on the working copy.
func (e *Editor) SetNotes(v string) { e.working.Notes = v }

// Day returns the current working copy.
func (e *Editor) Day() presence.DayRecord {
	return e.working
}

// Close commits the working copy back onto the day. Time fields that hold an
// incomplete or invalid value revert to their pre-edit content; everything
// else commits as entered. If the committed day differs from the pre-edit
// state it is marked modified and as having data.
func (e *Editor) Close() {
	for _, field := range []TimeField{
		FieldEntryMorning, FieldExitMorning,
		FieldEntryAfternoon, FieldExitAfternoon,
		FieldTimeOff, FieldExtraHours,
	} {
		ref := timeFieldRef(&e.working, field)
		if !timefmt.IsComplete(*ref) {
			*ref = *timeFieldRef(&e.baseline, field)
		}
	}

	if IsDayModified(&e.baseline, e.working) {
		e.working.Modified = true
		e.working.HasData = true
	}
	*e.target = e.working
}

func timeFieldRef(rec *presence.DayRecord, field TimeField) *string {
	switch field {
	case FieldEntryMorning:
		return &rec.EntryTimeMorning
	case FieldExitMorning:
		return &rec.ExitTimeMorning
	case FieldEntryAfternoon:
		return &rec.EntryTimeAfternoon
	case FieldExitAfternoon:
		return &rec.ExitTimeAfternoon
	case FieldTimeOff:
		return &rec.TimeOff
	case FieldExtraHours:
		return &rec.ExtraHours
	}
	panic("unknown time field: " + string(field))
}
