package cmd

import (
	"fmt"
	"strconv"
	"time"

	"coursepace/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	planFile := cfg.Data.PlanFile
	recordsFile := cfg.Data.RecordsFile
	deadline := cfg.Pace.Deadline
	discount := strconv.FormatFloat(cfg.Pace.Discount*100, 'f', 0, 64)
	theme := cfg.Appearance.Theme

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plan CSV").
				Description("One row per person: person_id, person_name, planned_hours").
				Value(&planFile),
			huh.NewInput().
				Title("Records CSV").
				Description("One row per person-course: id, name, course, hours, completed, start_date").
				Value(&recordsFile),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deadline").
				Description("YYYY-MM-DD; holidays only cover the deadline's year").
				Validate(func(s string) error {
					_, err := time.Parse("2006-01-02", s)
					if err != nil {
						return fmt.Errorf("expected YYYY-MM-DD")
					}
					return nil
				}).
				Value(&deadline),
			huh.NewInput().
				Title("Safety discount (%)").
				Description("Share of usable days assumed actually available, e.g. 70").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 || v > 100 {
						return fmt.Errorf("expected a percentage in (0, 100]")
					}
					return nil
				}).
				Value(&discount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Data.PlanFile = planFile
	cfg.Data.RecordsFile = recordsFile
	cfg.Pace.Deadline = deadline
	pct, _ := strconv.ParseFloat(discount, 64)
	cfg.Pace.Discount = pct / 100
	cfg.Appearance.Theme = theme

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `coursepace setup` anytime to reconfigure.")
	return nil
}
