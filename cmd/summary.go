package cmd

import (
	"fmt"

	"coursepace/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Team totals and course status counts",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	if len(d.plan) == 0 {
		fmt.Println("\n  The plan is empty — nothing to report.")
		return nil
	}

	report := d.paceReport()
	s := d.summary

	fmt.Println()
	fmt.Println(cli.RenderTitle("TRAINING PROGRESS"))
	fmt.Println()

	rows := [][]string{
		{"People in plan", cli.FormatNumber(int64(s.People))},
		{"Planned hours", cli.FormatHours(s.TotalPlannedHours)},
		{"Realized hours", cli.FormatHours(s.TotalRealizedHours)},
		{"Overall progress", cli.FormatPercent(s.OverallPercent)},
		{"---"},
		{"Courses completed", cli.FormatNumber(int64(s.CoursesCompleted))},
		{"Courses in progress", cli.FormatNumber(int64(s.CoursesInProgress))},
		{"Courses pending", cli.FormatNumber(int64(s.CoursesPending))},
		{"---"},
		{"Deadline", cli.FormatDate(d.deadline)},
		{"Calendar days left", cli.FormatDays(report.CalendarDaysRemaining)},
		{"Usable days", cli.FormatDays(report.UsableDays)},
		{"Effective days", fmt.Sprintf("%s (%.0f%% of usable)", cli.FormatDays(report.EffectiveDays), d.cfg.Pace.Discount*100)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if report.DeadlinePassed {
		fmt.Println("\n  No effective days remain but hours are still open — see `coursepace pace`.")
	}

	return nil
}
