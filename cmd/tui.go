package cmd

import (
	"fmt"

	"coursepace/internal/pipeline"
	"coursepace/internal/tui"
	"coursepace/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive dashboard",
	Long: "Open a full-screen dashboard with overview, per-person progress,\n" +
		"pace projection, and course listing tabs.",
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func snapshot(d *runData) tui.Data {
	return tui.Data{
		AsOf:     d.asOf,
		Deadline: d.deadline,
		Summary:  d.summary,
		People:   d.people,
		Pace:     d.paceReport(),
		Groups:   pipeline.GroupCourses(d.plan, d.records),
	}
}

func runTUI(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	theme.SetActive(d.cfg.Appearance.Theme)

	// Reloads happen inside the alt screen; stderr warnings would tear it.
	flagQuiet = true

	app := tui.NewApp(snapshot(d), func() (tui.Data, error) {
		fresh, err := loadData()
		if err != nil {
			return tui.Data{}, err
		}
		return snapshot(fresh), nil
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
