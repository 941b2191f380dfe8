// Package calendar counts usable working days between dates against an
// injectable holiday set.
package calendar

import "time"

// Calendar is a business-day calendar: weekdays count, weekends and listed
// holidays do not. The holiday set is valid for a single year; counts over
// ranges outside that year silently miss that year's holidays, so callers
// should check Covers and warn (generalizing across years is out of scope).
type Calendar struct {
	Year     int
	holidays map[string]struct{}
}

const dayKey = "2006-01-02"

// New builds a calendar from a validity year and its holiday dates.
// Time-of-day and location on the holiday values are ignored.
func New(year int, holidays []time.Time) Calendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Format(dayKey)] = struct{}{}
	}
	return Calendar{Year: year, holidays: set}
}

// IsHoliday reports whether the given date is in the holiday set.
func (c Calendar) IsHoliday(d time.Time) bool {
	_, ok := c.holidays[d.Format(dayKey)]
	return ok
}

// UsableDays counts days in the inclusive range [start, end] that are
// Monday through Friday and not holidays. An inverted range counts as 0.
func (c Calendar) UsableDays(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		wd := d.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if c.IsHoliday(d) {
			continue
		}
		count++
	}
	return count
}

// Covers reports whether both range endpoints fall inside the validity year.
func (c Calendar) Covers(start, end time.Time) bool {
	return start.Year() == c.Year && end.Year() == c.Year
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Brazil2026 returns the calendar of Brazilian national holidays for 2026,
// including the Carnival Monday/Tuesday and Ash Wednesday that most
// companies bridge.
func Brazil2026() Calendar {
	dates := []time.Time{
		date(2026, 1, 1),   // New Year's Day
		date(2026, 2, 16),  // Carnival Monday
		date(2026, 2, 17),  // Carnival Tuesday
		date(2026, 2, 18),  // Ash Wednesday
		date(2026, 4, 3),   // Good Friday
		date(2026, 4, 21),  // Tiradentes
		date(2026, 5, 1),   // Labour Day
		date(2026, 6, 4),   // Corpus Christi
		date(2026, 9, 7),   // Independence Day
		date(2026, 10, 12), // Our Lady of Aparecida
		date(2026, 11, 2),  // All Souls' Day
		date(2026, 11, 15), // Republic Day
		date(2026, 12, 25), // Christmas
	}
	return New(2026, dates)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
