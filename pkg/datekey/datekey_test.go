package datekey

import (
	"testing"
	"time"
)

func TestOf(t *testing.T) {
	if got := Of(2025, time.March, 1); got != "2025-03-01" {
		t.Errorf("Of(2025, March, 1) = %q, want 2025-03-01", got)
	}
	if got := Of(2025, time.December, 31); got != "2025-12-31" {
		t.Errorf("Of(2025, December, 31) = %q, want 2025-12-31", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"2025-03-01", "2025-03-01", true},
		{"2025-03-01T00:00:00Z", "2025-03-01", true},
		{"2025-03-01T23:15:00", "2025-03-01", true},
		{"01-03-2025", "", false},
		{"2025-3-1", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, err := Normalize(c.input)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("Normalize(%q) = %q, %v, want %q", c.input, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("Normalize(%q) succeeded, want error", c.input)
		}
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2025-03-01T00:00:00.000Z", "2025-03-01"},
		{"2025-03-01", "2025-03-01"},
		{"not-a-date", "not-a-date"},
	}
	for _, c := range cases {
		if got := Clean(c.input); got != c.want {
			t.Errorf("Clean(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.March, 31},
		{2025, time.April, 30},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %v) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	// March 2025 starts on a Saturday.
	if !IsWeekend(2025, time.March, 1) {
		t.Error("2025-03-01 should be a weekend (Saturday)")
	}
	if !IsWeekend(2025, time.March, 2) {
		t.Error("2025-03-02 should be a weekend (Sunday)")
	}
	if IsWeekend(2025, time.March, 3) {
		t.Error("2025-03-03 should be a weekday (Monday)")
	}
}
