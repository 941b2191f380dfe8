package cmd

import (
	"fmt"

	"coursepace/internal/cli"
	"coursepace/internal/model"

	"github.com/spf13/cobra"
)

var paceCmd = &cobra.Command{
	Use:   "pace",
	Short: "Required daily pace and risk tier per person",
	RunE:  runPace,
}

func init() {
	rootCmd.AddCommand(paceCmd)
}

func runPace(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	if len(d.people) == 0 {
		fmt.Println("\n  The plan is empty — nothing to project.")
		return nil
	}

	report := d.paceReport()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PACE TO %s", cli.FormatDate(d.deadline))))
	fmt.Println()
	fmt.Printf("  %s calendar | %s usable | %s effective (%.0f%%)\n\n",
		cli.FormatDays(report.CalendarDaysRemaining),
		cli.FormatDays(report.UsableDays),
		cli.FormatDays(report.EffectiveDays),
		d.cfg.Pace.Discount*100,
	)

	if report.DeadlinePassed {
		fmt.Println("  The deadline has passed with hours still open; required pace is")
		fmt.Println("  undefined and affected people are classified \"Action plan\".")
		fmt.Println()
	}

	maxPace := 3.0
	for _, p := range report.People {
		if p.RequiredDailyPace > maxPace {
			maxPace = p.RequiredDailyPace
		}
	}

	rows := make([][]string, 0, len(report.People))
	for _, p := range report.People {
		pace := "—"
		ideal := "—"
		if report.EffectiveDays > 0 {
			pace = cli.FormatPace(p.RequiredDailyPace)
			ideal = cli.FormatPace(p.IdealDailyPace)
		}
		rows = append(rows, []string{
			p.PersonName,
			cli.FormatHours(p.RemainingHours),
			pace,
			ideal,
			cli.RenderPaceBar(p.RequiredDailyPace, maxPace, p.Tier, 16),
			cli.RenderTier(p.Tier),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Person", "Left", "Required", "Ideal", "", "Tier"},
		Rows:    rows,
	}))

	fmt.Println()
	printTierLegend()

	return nil
}

func printTierLegend() {
	fmt.Println("  Tiers by required pace (h/day):")
	legend := []struct {
		tier  model.RiskTier
		bound string
	}{
		{model.TierDone, "≤ 0"},
		{model.TierComfortable, "≤ 1"},
		{model.TierGoodPace, "≤ 1.5"},
		{model.TierAttention, "≤ 2"},
		{model.TierCritical, "≤ 3"},
		{model.TierActionPlan, "> 3"},
	}
	for _, l := range legend {
		fmt.Printf("    %-6s %s\n", l.bound, cli.RenderTier(l.tier))
	}
}
