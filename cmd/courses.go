package cmd

import (
	"fmt"

	"coursepace/internal/cli"
	"coursepace/internal/model"
	"coursepace/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Course-level status listing per person",
	Long: "List every course record grouped by person, including people that\n" +
		"have records but no plan entry.",
	RunE: runCourses,
}

func init() {
	rootCmd.AddCommand(coursesCmd)
}

func runCourses(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	groups := pipeline.GroupCourses(d.plan, d.records)
	if len(groups) == 0 {
		fmt.Println("\n  No course records found.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("COURSES BY PERSON"))
	fmt.Println()

	for _, g := range groups {
		name := g.PersonName
		if !g.InPlan {
			name += "  (not in plan)"
		}

		rows := make([][]string, 0, len(g.Courses))
		for _, c := range g.Courses {
			start := ""
			if c.StartDate != nil {
				start = cli.FormatDate(*c.StartDate)
			}
			rows = append(rows, []string{
				c.CourseName,
				cli.FormatHours(c.Hours),
				start,
				renderStatus(c.Status),
			})
		}

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   name,
			Headers: []string{"Course", "Hours", "Started", "Status"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	return nil
}

func renderStatus(s model.CourseStatus) string {
	var color lipgloss.Color
	switch s {
	case model.StatusCompleted:
		color = cli.ColorGreen
	case model.StatusInProgress:
		color = cli.ColorYellow
	default:
		color = cli.ColorRed
	}
	return lipgloss.NewStyle().Foreground(color).Render(s.String())
}
