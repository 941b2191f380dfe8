// Package report renders a standalone HTML progress report, the printable
// counterpart of the terminal output.
package report

import (
	"fmt"
	"html/template"
	"os"
	"time"

	"coursepace/internal/model"
)

// Data is everything the HTML template needs for one report.
type Data struct {
	GeneratedAt time.Time
	AsOf        time.Time
	Deadline    time.Time

	Summary model.TeamSummary
	People  []model.PersonProgress
	Pace    model.PaceReport
}

// row adapts a PacedPerson for the template with presentation fields.
type paceRow struct {
	Name      string
	Required  string
	Ideal     string
	TierLabel string
	TierColor string
	BarPct    int
}

type progressRow struct {
	Name      string
	Planned   string
	Realized  string
	Remaining string
	Percent   string
	BarPct    int
	BarColor  string
}

// Write renders the report to the given path.
func Write(path string, d Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = f.Close() }()

	view := buildView(d)
	if err := pageTemplate.Execute(f, view); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

type pageView struct {
	GeneratedAt string
	AsOf        string
	Deadline    string

	Summary       model.TeamSummary
	OverallPct    string
	Progress      []progressRow
	PaceRows      []paceRow
	CalendarDays  int
	UsableDays    int
	EffectiveDays int
	DiscountNote  string
	PastDeadline  bool
}

func buildView(d Data) pageView {
	v := pageView{
		GeneratedAt:   d.GeneratedAt.Format("2006-01-02 15:04"),
		AsOf:          d.AsOf.Format("2006-01-02"),
		Deadline:      d.Deadline.Format("2006-01-02"),
		Summary:       d.Summary,
		OverallPct:    fmt.Sprintf("%.1f%%", d.Summary.OverallPercent),
		CalendarDays:  d.Pace.CalendarDaysRemaining,
		UsableDays:    d.Pace.UsableDays,
		EffectiveDays: d.Pace.EffectiveDays,
		PastDeadline:  d.Pace.DeadlinePassed,
	}

	for _, p := range d.People {
		bar := int(p.PercentComplete)
		if bar > 100 {
			bar = 100
		}
		if bar < 0 {
			bar = 0
		}
		color := "#dc3545"
		switch {
		case p.PercentComplete >= 80:
			color = "#28a745"
		case p.PercentComplete >= 40:
			color = "#ffc107"
		}
		v.Progress = append(v.Progress, progressRow{
			Name:      p.PersonName,
			Planned:   fmt.Sprintf("%.0f", p.PlannedHours),
			Realized:  fmt.Sprintf("%.0f", p.RealizedHours),
			Remaining: fmt.Sprintf("%.0f", p.RemainingHours),
			Percent:   fmt.Sprintf("%.1f%%", p.PercentComplete),
			BarPct:    bar,
			BarColor:  color,
		})
	}

	maxPace := 3.0
	for _, p := range d.Pace.People {
		if p.RequiredDailyPace > maxPace {
			maxPace = p.RequiredDailyPace
		}
	}
	for _, p := range d.Pace.People {
		bar := 0
		if maxPace > 0 && p.RequiredDailyPace > 0 {
			bar = int(p.RequiredDailyPace / maxPace * 100)
		}
		v.PaceRows = append(v.PaceRows, paceRow{
			Name:      p.PersonName,
			Required:  fmt.Sprintf("%.2f", p.RequiredDailyPace),
			Ideal:     fmt.Sprintf("%.2f", p.IdealDailyPace),
			TierLabel: p.Tier.Label(),
			TierColor: tierHex(p.Tier),
			BarPct:    bar,
		})
	}

	return v
}

func tierHex(t model.RiskTier) string {
	switch t {
	case model.TierDone:
		return "#28a745"
	case model.TierComfortable:
		return "#3498db"
	case model.TierGoodPace:
		return "#2ecc71"
	case model.TierAttention:
		return "#f1c40f"
	case model.TierCritical:
		return "#e67e22"
	default:
		return "#e74c3c"
	}
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Training Progress Report</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; color: #222; margin: 2rem; }
  h1 { color: #1E3A5F; }
  h2 { color: #4A6FA5; border-bottom: 2px solid #e0e0e0; padding-bottom: 4px; }
  .meta { color: #666; font-size: 0.9rem; margin-bottom: 1.5rem; }
  .metrics { display: flex; gap: 12px; margin-bottom: 1.5rem; }
  .metric { flex: 1; background: #f5f7fa; border-left: 4px solid #1E3A5F; padding: 12px; border-radius: 6px; }
  .metric .value { font-size: 1.6rem; font-weight: bold; }
  .metric .label { color: #666; font-size: 0.8rem; }
  table { border-collapse: collapse; width: 100%; margin-bottom: 1.5rem; }
  th, td { border: 1px solid #ddd; padding: 6px 10px; text-align: left; font-size: 0.9rem; }
  th { background: #1E3A5F; color: white; }
  td.num { text-align: right; }
  .bar { background: #f0f0f0; border-radius: 4px; height: 14px; min-width: 120px; position: relative; }
  .bar .fill { height: 100%; border-radius: 4px; }
  .tier { font-weight: bold; }
  .warn { background: #f8d7da; border-left: 4px solid #dc3545; padding: 10px; border-radius: 6px; margin-bottom: 1.5rem; }
</style>
</head>
<body>
<h1>Training Progress Report</h1>
<p class="meta">As of {{.AsOf}} &middot; deadline {{.Deadline}} &middot; generated {{.GeneratedAt}}</p>

<div class="metrics">
  <div class="metric"><div class="value">{{.OverallPct}}</div><div class="label">Overall completion</div></div>
  <div class="metric"><div class="value">{{.Summary.People}}</div><div class="label">People in plan</div></div>
  <div class="metric"><div class="value">{{.EffectiveDays}}</div><div class="label">Effective days left</div></div>
  <div class="metric"><div class="value">{{.Summary.CoursesCompleted}} / {{.Summary.CoursesInProgress}} / {{.Summary.CoursesPending}}</div><div class="label">Courses done / doing / pending</div></div>
</div>

{{if .PastDeadline}}
<div class="warn">The deadline has passed with hours still remaining; required pace is undefined.</div>
{{end}}

<h2>Progress by person</h2>
<table>
<tr><th>Person</th><th>Planned</th><th>Realized</th><th>Remaining</th><th>%</th><th>Progress</th></tr>
{{range .Progress}}
<tr>
  <td>{{.Name}}</td>
  <td class="num">{{.Planned}}</td>
  <td class="num">{{.Realized}}</td>
  <td class="num">{{.Remaining}}</td>
  <td class="num">{{.Percent}}</td>
  <td><div class="bar"><div class="fill" style="width: {{.BarPct}}%; background: {{.BarColor}};"></div></div></td>
</tr>
{{end}}
</table>

<h2>Required pace to {{.Deadline}}</h2>
<p class="meta">{{.CalendarDays}} calendar days &middot; {{.UsableDays}} usable days &middot; {{.EffectiveDays}} effective days after the safety discount</p>
<table>
<tr><th>Person</th><th>Required h/day</th><th>Ideal h/day</th><th>Tier</th><th></th></tr>
{{range .PaceRows}}
<tr>
  <td>{{.Name}}</td>
  <td class="num">{{.Required}}</td>
  <td class="num">{{.Ideal}}</td>
  <td class="tier" style="color: {{.TierColor}};">{{.TierLabel}}</td>
  <td><div class="bar"><div class="fill" style="width: {{.BarPct}}%; background: {{.TierColor}};"></div></div></td>
</tr>
{{end}}
</table>

</body>
</html>
`))
