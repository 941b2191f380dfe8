package tui

import (
	"fmt"
	"strings"

	"coursepace/internal/cli"
	"coursepace/internal/model"
	"coursepace/internal/tui/components"
	"coursepace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.data.Summary
	pace := a.data.Pace
	var b strings.Builder

	// Row 1: Team metric cards
	metrics := []components.Metric{
		{Label: "People", Value: cli.FormatNumber(int64(s.People)), Sub: "in plan"},
		{Label: "Planned", Value: cli.FormatHours(s.TotalPlannedHours)},
		{Label: "Realized", Value: cli.FormatHours(s.TotalRealizedHours),
			Sub: cli.FormatHours(s.TotalPlannedHours-s.TotalRealizedHours) + " left"},
		{Label: "Overall", Value: cli.FormatPercent(s.OverallPercent)},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Course status counts
	courses := []components.Metric{
		{Label: "Completed", Value: cli.FormatNumber(int64(s.CoursesCompleted)), Sub: "courses"},
		{Label: "In progress", Value: cli.FormatNumber(int64(s.CoursesInProgress)), Sub: "courses"},
		{Label: "Pending", Value: cli.FormatNumber(int64(s.CoursesPending)), Sub: "courses"},
	}
	b.WriteString(components.MetricCardRow(courses, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)

	// Left: runway to the deadline
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	var runway strings.Builder
	rows := []struct{ label, val string }{
		{"Deadline", cli.FormatDate(a.data.Deadline)},
		{"Calendar days", cli.FormatDays(pace.CalendarDaysRemaining)},
		{"Usable weekdays", cli.FormatDays(pace.UsableDays)},
		{"Effective days", cli.FormatDays(pace.EffectiveDays)},
	}
	for _, r := range rows {
		fmt.Fprintf(&runway, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", r.label)),
			valStyle.Render(r.val))
	}
	if pace.DeadlinePassed {
		runway.WriteString("\n")
		runway.WriteString(warnStyle.Render("No working days left"))
	}
	left := components.ContentCard("Runway", strings.TrimRight(runway.String(), "\n"), halves[0])

	// Right: risk tier distribution
	counts := make(map[model.RiskTier]int)
	for _, p := range pace.People {
		counts[p.Tier]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	innerW := components.CardInnerWidth(halves[1])
	barW := innerW - 16
	if barW < 4 {
		barW = 4
	}

	tiers := []model.RiskTier{
		model.TierDone, model.TierComfortable, model.TierGoodPace,
		model.TierAttention, model.TierCritical, model.TierActionPlan,
	}

	var dist strings.Builder
	for _, tier := range tiers {
		c := counts[tier]
		frac := 0.0
		if maxCount > 0 {
			frac = float64(c) / float64(maxCount)
		}
		filled := int(frac * float64(barW))

		tierStyle := lipgloss.NewStyle().Foreground(tierColor(tier))
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

		fmt.Fprintf(&dist, "%s %s%s %s\n",
			tierStyle.Render(fmt.Sprintf("%-11s", tier.Label())),
			tierStyle.Render(strings.Repeat("█", filled)),
			dimStyle.Render(strings.Repeat("░", barW-filled)),
			valStyle.Render(cli.FormatNumber(int64(c))))
	}
	right := components.ContentCard("Risk tiers", strings.TrimRight(dist.String(), "\n"), halves[1])

	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")

	return b.String()
}
