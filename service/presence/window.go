package presence

import "time"

// Grace period, in days, during which the previous month stays editable.
const submissionGraceDays = 5

// CanEditMonth reports whether an employee may still edit and submit the
// given month at the given instant: the current month always, and the
// previous month during the first days of the current one.
func CanEditMonth(year int, month time.Month, now time.Time) bool {
	if year == now.Year() && month == now.Month() {
		return true
	}

	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	if year == prev.Year() && month == prev.Month() {
		return now.Day() <= submissionGraceDays
	}
	return false
}
