package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"coursepace/internal/calendar"
	"coursepace/internal/config"
	"coursepace/internal/model"
	"coursepace/internal/pipeline"
	"coursepace/internal/source"

	"github.com/spf13/cobra"
)

var (
	flagPlan    string
	flagRecords string
	flagAsOf    string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "coursepace",
	Short: "Training-plan progress and pace tracker",
	Long: "Track a team's training progress against a planned hour budget\n" +
		"and project the daily pace each person needs to meet the deadline.",
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "p", "", "Plan CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagRecords, "records", "r", "", "Records CSV file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Reference date YYYY-MM-DD (default: today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings on stderr")
}

// runData bundles everything the report commands need from one load.
type runData struct {
	cfg      config.Config
	asOf     time.Time
	deadline time.Time
	cal      calendar.Calendar

	records []model.CourseRecord // status already normalized
	plan    []model.PlanEntry
	people  []model.PersonProgress
	summary model.TeamSummary
}

// loadData is the shared load-validate-aggregate path used by all commands.
// The as-of date is resolved here, once, so every downstream computation in
// a run sees the same "today".
func loadData() (*runData, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	d := &runData{cfg: cfg}

	d.asOf = time.Now()
	if flagAsOf != "" {
		d.asOf, err = time.Parse("2006-01-02", flagAsOf)
		if err != nil {
			return nil, fmt.Errorf("--as-of: invalid date %q (expected YYYY-MM-DD)", flagAsOf)
		}
	}

	d.deadline, err = cfg.DeadlineDate()
	if err != nil {
		return nil, err
	}
	d.cal, err = cfg.Calendar()
	if err != nil {
		return nil, err
	}

	planPath := cfg.Data.PlanFile
	if flagPlan != "" {
		planPath = flagPlan
	}
	recordsPath := cfg.Data.RecordsFile
	if flagRecords != "" {
		recordsPath = flagRecords
	}

	ds, err := source.Load(planPath, recordsPath)
	if err != nil {
		return nil, err
	}
	d.plan = ds.Plan

	var unknown []string
	d.records, unknown = pipeline.NormalizeAll(ds.Records)
	if len(unknown) > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Unrecognized completion flags treated as pending: %s\n",
			strings.Join(unknown, ", "))
	}

	if ids := pipeline.Unplanned(d.plan, d.records); len(ids) > 0 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  %d person(s) have course records but no plan entry; excluded from progress (see `coursepace courses`)\n", len(ids))
	}

	d.people = pipeline.Aggregate(d.plan, d.records)
	d.summary = pipeline.Summarize(d.people, d.records)

	return d, nil
}

// paceReport projects pace for the loaded data, warning when the date range
// leaves the holiday calendar's validity year.
func (d *runData) paceReport() model.PaceReport {
	if !d.cal.Covers(d.asOf, d.deadline) && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Date range %s..%s leaves the %d holiday calendar; counts ignore holidays outside it\n",
			d.asOf.Format("2006-01-02"), d.deadline.Format("2006-01-02"), d.cal.Year)
	}
	return pipeline.Project(d.people, d.asOf, d.deadline, d.cfg.Pace.Discount, d.cal)
}
