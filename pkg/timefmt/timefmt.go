// Package timefmt validates and normalizes the "HH:MM" time strings used by
// every presence field. Values in flight from an input widget may be partial;
// a partial value is only rejected once it can no longer grow into a valid
// time.
package timefmt

import (
	"strings"
)

// Zero is the fallback duration for optional fields left empty at
// submission time.
const Zero = "00:00"

// IsValid reports whether value is an acceptable state for a time input.
// The empty string is valid (all time fields are optional), and so is any
// prefix of a valid zero-padded "HH:MM" time, so no error is raised while
// the user is still typing. A full five-character value must be exactly
// HH:MM with HH in 00-23 and MM in 00-59.
func IsValid(value string) bool {
	if value == "" {
		return true
	}
	if len(value) > 5 {
		return false
	}
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch i {
		case 0:
			if c < '0' || c > '2' {
				return false
			}
		case 1:
			if c < '0' || c > '9' {
				return false
			}
			if value[0] == '2' && c > '3' {
				return false
			}
		case 2:
			if c != ':' {
				return false
			}
		case 3:
			if c < '0' || c > '5' {
				return false
			}
		case 4:
			if c < '0' || c > '9' {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether value is committable: either empty or a full,
// valid "HH:MM" time. Partial prefixes pass IsValid but not IsComplete.
func IsComplete(value string) bool {
	if value == "" {
		return true
	}
	return len(value) == 5 && IsValid(value)
}

// FormatInput turns raw keystrokes into a partially or fully formatted time:
// non-digits are stripped, a colon is inserted after the second digit, and
// the result is clipped to five characters ("0930" becomes "09:30").
// Applying it to its own output is a no-op.
func FormatInput(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	digits := b.String()
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + ":" + digits[2:]
}

// Clip reduces a backend time value to "HH:MM", dropping a seconds component
// when present ("09:30:00" becomes "09:30"). Empty input stays empty.
func Clip(value string) string {
	if value == "" {
		return ""
	}
	parts := strings.Split(value, ":")
	if len(parts) < 2 {
		return value
	}
	return parts[0] + ":" + parts[1]
}
