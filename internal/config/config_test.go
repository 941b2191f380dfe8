package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pace.Deadline != "2026-12-20" {
		t.Errorf("default deadline = %q, want 2026-12-20", cfg.Pace.Deadline)
	}
	if cfg.Pace.Discount != 0.70 {
		t.Errorf("default discount = %v, want 0.70", cfg.Pace.Discount)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestValidate_BadDeadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pace.Deadline = "20/12/2026"

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for malformed deadline")
	}
}

func TestValidate_DiscountRange(t *testing.T) {
	for _, d := range []float64{0, -0.5, 1.5} {
		cfg := DefaultConfig()
		cfg.Pace.Discount = d
		if err := cfg.Validate(); err == nil {
			t.Errorf("discount %v passed validation, want error", d)
		}
	}

	cfg := DefaultConfig()
	cfg.Pace.Discount = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("discount 1.0 failed validation: %v", err)
	}
}

func TestValidate_BadHoliday(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pace.Holidays = []string{"2026-01-01", "not-a-date"}

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for malformed holiday date")
	}
}

func TestCalendar_DefaultsToBrazil2026(t *testing.T) {
	cfg := DefaultConfig()

	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.Year != 2026 {
		t.Errorf("calendar year = %d, want 2026", cal.Year)
	}
	tiradentes := time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)
	if !cal.IsHoliday(tiradentes) {
		t.Error("built-in calendar misses Tiradentes (2026-04-21)")
	}
}

func TestCalendar_ExplicitHolidaysWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pace.Holidays = []string{"2026-12-24"}

	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cal.IsHoliday(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)) {
		t.Error("configured holiday not in calendar")
	}
	if cal.IsHoliday(time.Date(2026, 4, 21, 0, 0, 0, 0, time.UTC)) {
		t.Error("built-in holiday leaked into explicitly configured calendar")
	}
}

func TestCalendar_OtherYearIsWeekendsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pace.Deadline = "2027-06-30"

	cal, err := cfg.Calendar()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.Year != 2027 {
		t.Errorf("calendar year = %d, want 2027", cal.Year)
	}
	if cal.IsHoliday(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("2027 calendar has holidays without configuration")
	}
}
