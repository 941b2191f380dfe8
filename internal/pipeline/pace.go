package pipeline

import (
	"math"
	"sort"
	"time"

	"coursepace/internal/calendar"
	"coursepace/internal/model"
)

// Project converts each person's remaining hours into the daily pace
// required to close the gap by the deadline, classifies it into a risk
// tier, and returns the run-level day counters.
//
// The pace denominator is the usable-day count discounted by the safety
// factor: floor(usable * discount). When that reaches zero while hours
// remain (deadline passed or too close), pace is undefined; affected
// people short-circuit to the most severe tier and no division happens.
func Project(people []model.PersonProgress, asOf, deadline time.Time, discount float64, cal calendar.Calendar) model.PaceReport {
	report := model.PaceReport{
		CalendarDaysRemaining: calendarDays(asOf, deadline),
		UsableDays:            cal.UsableDays(asOf, deadline),
	}
	report.EffectiveDays = int(math.Floor(float64(report.UsableDays) * discount))

	report.People = make([]model.PacedPerson, 0, len(people))
	for _, p := range people {
		paced := model.PacedPerson{PersonProgress: p}

		if report.EffectiveDays > 0 {
			paced.RequiredDailyPace = round2(p.RemainingHours / float64(report.EffectiveDays))
			paced.IdealDailyPace = round2(p.PlannedHours / float64(report.EffectiveDays))
			paced.Tier = ClassifyPace(paced.RequiredDailyPace)
		} else if p.RemainingHours > 0 {
			paced.Tier = model.TierActionPlan
			report.DeadlinePassed = true
		} else {
			paced.Tier = model.TierDone
		}

		report.People = append(report.People, paced)
	}

	// Most comfortable first; stable so equal paces keep plan order.
	sort.SliceStable(report.People, func(i, j int) bool {
		return report.People[i].RequiredDailyPace < report.People[j].RequiredDailyPace
	})

	return report
}

// ClassifyPace maps a required daily pace onto the fixed tier ladder.
// Boundaries are inclusive on the lower tier: exactly 1.5 is still
// "Good pace". Downstream alerting depends on these exact tie-breaks.
func ClassifyPace(pace float64) model.RiskTier {
	switch {
	case pace <= 0:
		return model.TierDone
	case pace <= 1:
		return model.TierComfortable
	case pace <= 1.5:
		return model.TierGoodPace
	case pace <= 2:
		return model.TierAttention
	case pace <= 3:
		return model.TierCritical
	default:
		return model.TierActionPlan
	}
}

// calendarDays returns whole days from asOf to deadline, negative when the
// deadline already passed.
func calendarDays(asOf, deadline time.Time) int {
	a := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(a).Hours() / 24)
}
