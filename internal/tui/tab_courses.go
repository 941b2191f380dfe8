package tui

import (
	"fmt"
	"strings"

	"coursepace/internal/cli"
	"coursepace/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderCoursesTab(cw, contentH int) string {
	t := theme.Active
	groups := a.data.Groups

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(groups) == 0 {
		return mutedStyle.Render("\n  No course records found.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	courseW := cw - 30
	if courseW < 20 {
		courseW = 20
	}

	var lines []string
	for _, g := range groups {
		header := " " + nameStyle.Render(g.PersonName)
		if !g.InPlan {
			header += noteStyle.Render("  (not in plan)")
		}
		lines = append(lines, header)

		for _, c := range g.Courses {
			start := "          "
			if c.StartDate != nil {
				start = cli.FormatDate(*c.StartDate)
			}
			lines = append(lines, fmt.Sprintf("   %s %s %s  %s",
				renderStatusDot(c.Status),
				valStyle.Render(fmt.Sprintf("%-*s", courseW, truncStr(c.CourseName, courseW))),
				mutedStyle.Render(fmt.Sprintf("%7s", cli.FormatHours(c.Hours))),
				noteStyle.Render(start)))
		}
		lines = append(lines, "")
	}

	// Manual scroll window; the cursor keys move courseScrl.
	start := a.courseScrl
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if start < 0 {
		start = 0
	}
	end := start + contentH
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n")
}
