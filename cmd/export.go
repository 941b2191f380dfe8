package cmd

import (
	"fmt"
	"time"

	"coursepace/internal/report"

	"github.com/spf13/cobra"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a standalone HTML report",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "progress-report.html", "Output file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	d, err := loadData()
	if err != nil {
		return err
	}

	data := report.Data{
		GeneratedAt: time.Now(),
		AsOf:        d.asOf,
		Deadline:    d.deadline,
		Summary:     d.summary,
		People:      d.people,
		Pace:        d.paceReport(),
	}

	if err := report.Write(flagExportOut, data); err != nil {
		return err
	}

	fmt.Printf("  Report written to %s\n", flagExportOut)
	return nil
}
