package presence

// Payload is the exact day shape the persistence endpoints accept: a
// DayRecord minus the client-local flags, with time_off and extra_hours
// always populated ("00:00" when the user left them empty).
type Payload struct {
	Date               string `json:"date"`
	EmployeeID         string `json:"employee_id"`
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
}

// Overview is the backend-computed monthly summary for one employee.
type Overview struct {
	TotalWorkedHours     float64 `json:"totalWorkedHoursInMonth"`
	TotalExtraHours      float64 `json:"totalExtraHoursInMonth"`
	TotalOffHours        float64 `json:"totalOffHoursInMonth"`
	TotalOffDays         float64 `json:"totalOffDaysInMonth"`
	TotalExpectedWorking float64 `json:"totalExpectedWorkingHours"`
	IsSubmitted          bool    `json:"isSubmitted"`
	Notes                string  `json:"notes"`
}
