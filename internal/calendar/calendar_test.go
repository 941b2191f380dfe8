package calendar

import (
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestUsableDays_WeekendOnly(t *testing.T) {
	c := Brazil2026()

	// 2026-01-03 is a Saturday, 2026-01-04 a Sunday.
	got := c.UsableDays(day(t, "2026-01-03"), day(t, "2026-01-04"))
	if got != 0 {
		t.Fatalf("UsableDays over a weekend = %d, want 0", got)
	}
}

func TestUsableDays_ExcludesWeekdayHoliday(t *testing.T) {
	c := Brazil2026()

	// 2026-04-20 (Mon) through 2026-04-24 (Fri); Tiradentes falls on
	// Tuesday the 21st, so only four of the five weekdays count.
	got := c.UsableDays(day(t, "2026-04-20"), day(t, "2026-04-24"))
	if got != 4 {
		t.Fatalf("UsableDays across Tiradentes week = %d, want 4", got)
	}
}

func TestUsableDays_FullWeek(t *testing.T) {
	c := Brazil2026()

	// 2026-03-02 (Mon) through 2026-03-08 (Sun): five weekdays, no holidays.
	got := c.UsableDays(day(t, "2026-03-02"), day(t, "2026-03-08"))
	if got != 5 {
		t.Fatalf("UsableDays over a clean week = %d, want 5", got)
	}
}

func TestUsableDays_SingleDayRange(t *testing.T) {
	c := Brazil2026()

	if got := c.UsableDays(day(t, "2026-03-04"), day(t, "2026-03-04")); got != 1 {
		t.Fatalf("single weekday range = %d, want 1", got)
	}
	if got := c.UsableDays(day(t, "2026-12-25"), day(t, "2026-12-25")); got != 0 {
		t.Fatalf("single holiday range = %d, want 0", got)
	}
}

func TestUsableDays_InvertedRange(t *testing.T) {
	c := Brazil2026()

	got := c.UsableDays(day(t, "2026-06-10"), day(t, "2026-06-01"))
	if got != 0 {
		t.Fatalf("UsableDays for inverted range = %d, want 0", got)
	}
}

func TestUsableDays_CustomHolidaySet(t *testing.T) {
	c := New(2027, []time.Time{day(t, "2027-01-01")})

	// 2027-01-01 is a Friday; the week of Dec 28 - Jan 1 has 4 usable days.
	got := c.UsableDays(day(t, "2026-12-28"), day(t, "2027-01-01"))
	if got != 4 {
		t.Fatalf("UsableDays with custom set = %d, want 4", got)
	}
}

func TestCovers(t *testing.T) {
	c := Brazil2026()

	if !c.Covers(day(t, "2026-02-01"), day(t, "2026-12-20")) {
		t.Error("Covers returned false for an in-year range")
	}
	if c.Covers(day(t, "2025-12-01"), day(t, "2026-01-15")) {
		t.Error("Covers returned true for a range starting in the prior year")
	}
	if c.Covers(day(t, "2026-12-01"), day(t, "2027-01-15")) {
		t.Error("Covers returned true for a range ending in the next year")
	}
}

func TestIsHoliday_IgnoresTimeOfDay(t *testing.T) {
	c := Brazil2026()

	noon := time.Date(2026, 5, 1, 12, 30, 0, 0, time.UTC)
	if !c.IsHoliday(noon) {
		t.Error("IsHoliday = false for Labour Day at noon, want true")
	}
}
