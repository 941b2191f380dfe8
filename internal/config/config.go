// Package config loads and persists coursepace configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"coursepace/internal/calendar"
)

// Config holds all coursepace configuration.
type Config struct {
	Data       DataConfig       `toml:"data"`
	Pace       PaceConfig       `toml:"pace"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DataConfig holds default dataset locations.
type DataConfig struct {
	PlanFile    string `toml:"plan_file,omitempty"`
	RecordsFile string `toml:"records_file,omitempty"`
}

// PaceConfig holds the deadline, the safety discount, and the holiday list
// used by the business-day calendar. Holidays are calendar dates in
// YYYY-MM-DD form and are only valid for the deadline's year.
type PaceConfig struct {
	Deadline string   `toml:"deadline"`
	Discount float64  `toml:"discount"`
	Holidays []string `toml:"holidays,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration: the December 2026
// deadline with Brazilian national holidays and a 70% safety discount.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			PlanFile:    "plan.csv",
			RecordsFile: "records.csv",
		},
		Pace: PaceConfig{
			Deadline: "2026-12-20",
			Discount: 0.70,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coursepace")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "coursepace")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks the pace section for values the engine cannot work with.
func (c Config) Validate() error {
	if _, err := c.DeadlineDate(); err != nil {
		return err
	}
	if c.Pace.Discount <= 0 || c.Pace.Discount > 1 {
		return fmt.Errorf("pace.discount must be in (0, 1], got %v", c.Pace.Discount)
	}
	if _, err := c.HolidayDates(); err != nil {
		return err
	}
	return nil
}

// DeadlineDate parses the configured deadline.
func (c Config) DeadlineDate() (time.Time, error) {
	d, err := time.Parse("2006-01-02", c.Pace.Deadline)
	if err != nil {
		return time.Time{}, fmt.Errorf("pace.deadline: invalid date %q (expected YYYY-MM-DD)", c.Pace.Deadline)
	}
	return d, nil
}

// Calendar builds the business-day calendar for the configured deadline
// year. An explicit holiday list wins; without one, the built-in Brazilian
// set applies when the deadline falls in 2026, and any other year gets a
// weekends-only calendar (the holiday list does not generalize across
// years and must be configured per year).
func (c Config) Calendar() (calendar.Calendar, error) {
	deadline, err := c.DeadlineDate()
	if err != nil {
		return calendar.Calendar{}, err
	}

	if len(c.Pace.Holidays) > 0 {
		dates, err := c.HolidayDates()
		if err != nil {
			return calendar.Calendar{}, err
		}
		return calendar.New(deadline.Year(), dates), nil
	}

	if deadline.Year() == 2026 {
		return calendar.Brazil2026(), nil
	}
	return calendar.New(deadline.Year(), nil), nil
}

// HolidayDates parses the configured holiday list.
func (c Config) HolidayDates() ([]time.Time, error) {
	dates := make([]time.Time, 0, len(c.Pace.Holidays))
	for _, s := range c.Pace.Holidays {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("pace.holidays: invalid date %q (expected YYYY-MM-DD)", s)
		}
		dates = append(dates, d)
	}
	return dates, nil
}
