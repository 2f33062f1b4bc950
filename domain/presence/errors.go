package presence

import (
	"errors"
	"fmt"
	"strings"
)

// Presence domain errors
var (
	ErrMonthNotSelected = errors.New("year and month must both be selected")
	ErrDayNotFound      = errors.New("no day with that date in the current month")
	ErrNoMonthLoaded    = errors.New("no month view has been loaded yet")
	ErrStaleLoad        = errors.New("month data arrived after the selection changed and was discarded")
	ErrWindowClosed     = errors.New("presence can only be submitted for the current month")
	ErrDefaultsNotFound = errors.New("no default hours saved for this user")
)

// IncompleteMonthError blocks submission while working days are still missing
// data. Missing holds the date keys of the offending days.
type IncompleteMonthError struct {
	Missing []string
}

func (e *IncompleteMonthError) Error() string {
	return fmt.Sprintf("please fill all dates before submitting: %d days missing", len(e.Missing))
}

// MissingDefaultFieldsError rejects an apply-defaults request whose template
// is not fully populated. Fields holds the user-facing labels of the empty
// template fields, in template order.
type MissingDefaultFieldsError struct {
	Fields []string
}

func (e *MissingDefaultFieldsError) Error() string {
	return "missing: " + strings.Join(e.Fields, ", ")
}
