package tui

import (
	"fmt"
	"strings"

	"coursepace/internal/cli"
	"coursepace/internal/tui/components"
	"coursepace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderPaceTab(cw int) string {
	t := theme.Active
	pace := a.data.Pace
	var b strings.Builder

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	fmt.Fprintf(&b, " %s %s  %s %s  %s %s\n\n",
		mutedStyle.Render("calendar"), valStyle.Render(cli.FormatDays(pace.CalendarDaysRemaining)),
		mutedStyle.Render("usable"), valStyle.Render(cli.FormatDays(pace.UsableDays)),
		mutedStyle.Render("effective"), valStyle.Render(cli.FormatDays(pace.EffectiveDays)))

	if pace.DeadlinePassed {
		b.WriteString(" ")
		b.WriteString(warnStyle.Render("No working days remain; everyone with hours left needs an action plan."))
		b.WriteString("\n\n")
	}

	if len(pace.People) == 0 {
		b.WriteString(mutedStyle.Render("  No plan entries found."))
		return b.String()
	}

	// Scale bars against the heaviest required pace, floored so a lone
	// light workload doesn't render as a full bar.
	maxPace := 3.0
	for _, p := range pace.People {
		if p.RequiredDailyPace > maxPace {
			maxPace = p.RequiredDailyPace
		}
	}

	nameW := 22
	barW := cw - nameW - 40
	if barW < 8 {
		barW = 8
	}

	for _, p := range pace.People {
		paceStr := cli.FormatPace(p.RequiredDailyPace)
		if pace.EffectiveDays == 0 {
			paceStr = "—"
		}

		fmt.Fprintf(&b, " %s %s %s %s\n",
			valStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(p.PersonName, nameW-1))),
			components.PaceBar(p.RequiredDailyPace, maxPace, tierColor(p.Tier), barW),
			mutedStyle.Render(fmt.Sprintf("%12s", paceStr)),
			lipgloss.NewStyle().Foreground(tierColor(p.Tier)).Render(p.Tier.Label()))
	}

	b.WriteString("\n")
	b.WriteString(renderTierLegend())

	return b.String()
}

func renderTierLegend() string {
	t := theme.Active
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	entries := []struct {
		label string
		bound string
		color lipgloss.Color
	}{
		{"Done", "≤0", t.Green},
		{"Comfortable", "≤1", t.Blue},
		{"Good pace", "≤1.5", t.Cyan},
		{"Attention", "≤2", t.Yellow},
		{"Critical", "≤3", t.Orange},
		{"Action plan", ">3", t.Red},
	}

	var parts []string
	for _, e := range entries {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(e.color).Render(e.label)+
				dimStyle.Render(" "+e.bound))
	}

	return " " + dimStyle.Render("h/day: ") + strings.Join(parts, dimStyle.Render("  ·  "))
}
