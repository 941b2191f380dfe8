// Package cmd implements the coursepace CLI commands.
package cmd

import (
	"fmt"

	"coursepace/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Data]")
	fmt.Printf("    Plan file:    %s\n", cfg.Data.PlanFile)
	fmt.Printf("    Records file: %s\n", cfg.Data.RecordsFile)
	fmt.Println()

	fmt.Println("  [Pace]")
	fmt.Printf("    Deadline: %s\n", cfg.Pace.Deadline)
	fmt.Printf("    Discount: %.0f%% of usable days\n", cfg.Pace.Discount*100)
	if len(cfg.Pace.Holidays) > 0 {
		fmt.Printf("    Holidays: %d configured\n", len(cfg.Pace.Holidays))
	} else {
		fmt.Println("    Holidays: built-in (Brazil 2026)")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `coursepace setup` to reconfigure.")
	return nil
}
