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

func (a App) renderPeopleTab(cw, contentH int) string {
	t := theme.Active
	people := a.data.People

	if len(people) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("\n  No plan entries found.")
	}

	var b strings.Builder

	// Visible window around the cursor
	detailH := 10
	listH := contentH - detailH
	if listH < 3 {
		listH = 3
	}
	start := 0
	if a.cursor >= listH {
		start = a.cursor - listH + 1
	}
	end := start + listH
	if end > len(people) {
		end = len(people)
	}

	nameW := 22
	barW := cw - nameW - 30
	if barW < 10 {
		barW = 10
	}

	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hoursStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	for i := start; i < end; i++ {
		p := people[i]

		marker := "  "
		style := nameStyle
		if i == a.cursor {
			marker = "▸ "
			style = selStyle
		}

		name := truncStr(p.PersonName, nameW-1)
		fmt.Fprintf(&b, " %s%s %s %s\n",
			selStyle.Render(marker),
			style.Render(fmt.Sprintf("%-*s", nameW, name)),
			components.ProgressBar(p.PercentComplete/100, barW),
			hoursStyle.Render(fmt.Sprintf("%s / %s",
				cli.FormatHours(p.RealizedHours), cli.FormatHours(p.PlannedHours))))
	}

	// Detail card for the selected person
	b.WriteString("\n")
	b.WriteString(a.renderPersonDetail(people[a.cursor], cw))

	return b.String()
}

func (a App) renderPersonDetail(p model.PersonProgress, cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("Planned"), valStyle.Render(cli.FormatHours(p.PlannedHours)),
		labelStyle.Render("Done"), valStyle.Render(cli.FormatHours(p.RealizedHours)),
		labelStyle.Render("Left"), valStyle.Render(cli.FormatHours(p.RemainingHours)))

	courses := a.coursesByID[p.PersonID]
	if len(courses) == 0 {
		b.WriteString(labelStyle.Render("No course records yet"))
	} else {
		for i, c := range courses {
			if i >= 6 {
				fmt.Fprintf(&b, "%s\n",
					labelStyle.Render(fmt.Sprintf("… and %d more", len(courses)-i)))
				break
			}
			fmt.Fprintf(&b, "%s %s %s\n",
				renderStatusDot(c.Status),
				valStyle.Render(fmt.Sprintf("%-40s", truncStr(c.CourseName, 40))),
				labelStyle.Render(cli.FormatHours(c.Hours)))
		}
	}

	return components.ContentCard(p.PersonName,
		strings.TrimRight(b.String(), "\n"), cw)
}

func renderStatusDot(s model.CourseStatus) string {
	t := theme.Active
	var color lipgloss.Color
	switch s {
	case model.StatusCompleted:
		color = t.Green
	case model.StatusInProgress:
		color = t.Yellow
	default:
		color = t.Red
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
