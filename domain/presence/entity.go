package presence

import (
	"time"
)

// DayRecord is one calendar day's full presence state. Time-of-day fields are
// "HH:MM" strings; an empty string means unset. Date is the canonical
// "YYYY-MM-DD" key, unique within a MonthView.
type DayRecord struct {
	Date               string `json:"date"`
	EmployeeID         string `json:"employee_id,omitempty"`
	EntryTimeMorning   string `json:"entry_time_morning"`
	ExitTimeMorning    string `json:"exit_time_morning"`
	EntryTimeAfternoon string `json:"entry_time_afternoon"`
	ExitTimeAfternoon  string `json:"exit_time_afternoon"`
	NationalHoliday    bool   `json:"national_holiday"`
	Weekend            bool   `json:"weekend"`
	DayOff             bool   `json:"day_off"`
	TimeOff            string `json:"time_off"`
	ExtraHours         string `json:"extra_hours"`
	Illness            string `json:"illness"`
	Notes              string `json:"notes"`

	// Client-local state, never transmitted.
	Modified bool `json:"-"`
	HasData  bool `json:"-"`
}

// MonthView is the gap-free, ascending sequence of DayRecords for one
// (employee, year, month). It is rebuilt from scratch on every month
// selection or refresh, never carried across months.
type MonthView struct {
	EmployeeID string
	Year       int
	Month      time.Month
	Days       []DayRecord
}

// Day returns a pointer to the record for the given date key, or nil when the
// date does not belong to this month.
func (v *MonthView) Day(dateKey string) *DayRecord {
	for i := range v.Days {
		if v.Days[i].Date == dateKey {
			return &v.Days[i]
		}
	}
	return nil
}

// Clone returns a deep copy, used to snapshot a view before a mutating
// operation that must be all-or-nothing.
func (v *MonthView) Clone() *MonthView {
	if v == nil {
		return nil
	}
	out := *v
	out.Days = make([]DayRecord, len(v.Days))
	copy(out.Days, v.Days)
	return &out
}

// DefaultHours is the per-user template of the four daily time fields, used
// as a bulk-fill source for a MonthView. SubmittedByID records who saved the
// template when an admin fills it on an employee's behalf.
type DefaultHours struct {
	UserID             string `json:"user_id"`
	SubmittedByID      string `json:"submitted_by_id,omitempty"`
	EntryTimeMorning   string `json:"entry_time_morning"`
	ExitTimeMorning    string `json:"exit_time_morning"`
	EntryTimeAfternoon string `json:"entry_time_afternoon"`
	ExitTimeAfternoon  string `json:"exit_time_afternoon"`
}

// IsZero reports whether no template field is populated.
func (d DefaultHours) IsZero() bool {
	return d.EntryTimeMorning == "" && d.ExitTimeMorning == "" &&
		d.EntryTimeAfternoon == "" && d.ExitTimeAfternoon == ""
}
