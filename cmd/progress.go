package cmd

import (
	"fmt"

	"coursepace/internal/cli"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Per-person progress against the plan",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	if len(d.people) == 0 {
		fmt.Println("\n  The plan is empty — nothing to report.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROGRESS BY PERSON"))
	fmt.Println()

	rows := make([][]string, 0, len(d.people))
	for _, p := range d.people {
		rows = append(rows, []string{
			p.PersonName,
			cli.FormatHours(p.PlannedHours),
			cli.FormatHours(p.RealizedHours),
			cli.FormatHours(p.RemainingHours),
			cli.RenderBar(p.PercentComplete/100, 20),
			cli.FormatPercent(p.PercentComplete),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Person", "Planned", "Done", "Left", "Progress", "%"},
		Rows:    rows,
	}))

	return nil
}
