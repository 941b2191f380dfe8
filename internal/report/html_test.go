package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"coursepace/internal/model"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	d := Data{
		GeneratedAt: time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC),
		AsOf:        time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Deadline:    time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		Summary: model.TeamSummary{
			People:            1,
			TotalPlannedHours: 100,
			OverallPercent:    40.0,
			CoursesCompleted:  1,
			CoursesPending:    1,
		},
		People: []model.PersonProgress{{
			PersonID:        "1",
			PersonName:      "Ana",
			PlannedHours:    100,
			RealizedHours:   40,
			PercentComplete: 40.0,
			RemainingHours:  60,
		}},
		Pace: model.PaceReport{
			People: []model.PacedPerson{{
				PersonProgress: model.PersonProgress{
					PersonID:       "1",
					PersonName:     "Ana",
					PlannedHours:   100,
					RemainingHours: 60,
				},
				RequiredDailyPace: 6.67,
				IdealDailyPace:    11.11,
				Tier:              model.TierActionPlan,
			}},
			CalendarDaysRemaining: 19,
			UsableDays:            14,
			EffectiveDays:         9,
		},
	}

	if err := Write(path, d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(raw)

	for _, want := range []string{"Ana", "40.0%", "6.67", "Action plan", "9 effective days"} {
		if !strings.Contains(html, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWrite_PastDeadlineWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	d := Data{
		GeneratedAt: time.Now(),
		AsOf:        time.Date(2026, 12, 21, 0, 0, 0, 0, time.UTC),
		Deadline:    time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		Pace:        model.PaceReport{DeadlinePassed: true},
	}

	if err := Write(path, d); err != nil {
		t.Fatalf("Write: %v", err)
	}

	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "deadline has passed") {
		t.Error("report missing past-deadline warning")
	}
}
