package pipeline

import (
	"math"
	"sort"

	"coursepace/internal/model"
)

// Aggregate merges realized hours onto the plan and produces one
// PersonProgress per plan entry, in plan order. Only Completed records
// credit hours; people with no completed records get 0, never a gap.
// People present in the records but absent from the plan are excluded here
// (see Unplanned). Percent is rounded to one decimal and guarded to 0 when
// the planned budget is zero, so a degenerate plan row cannot poison the
// downstream projection with NaN.
func Aggregate(plan []model.PlanEntry, records []model.CourseRecord) []model.PersonProgress {
	realized := realizedHours(records)

	out := make([]model.PersonProgress, 0, len(plan))
	for _, p := range plan {
		hours := realized[p.PersonID]

		pct := 0.0
		if p.PlannedHours > 0 {
			pct = round1(hours / p.PlannedHours * 100)
		}

		out = append(out, model.PersonProgress{
			PersonID:        p.PersonID,
			PersonName:      p.PersonName,
			PlannedHours:    p.PlannedHours,
			RealizedHours:   hours,
			PercentComplete: pct,
			RemainingHours:  p.PlannedHours - hours,
		})
	}
	return out
}

// realizedHours sums Completed hours keyed by person id.
func realizedHours(records []model.CourseRecord) map[string]float64 {
	sums := make(map[string]float64)
	for _, rec := range records {
		if rec.Status != model.StatusCompleted {
			continue
		}
		sums[rec.PersonID] += rec.Hours
	}
	return sums
}

// Summarize computes the run-level aggregate across the merged progress
// rows and the full record set.
func Summarize(people []model.PersonProgress, records []model.CourseRecord) model.TeamSummary {
	var s model.TeamSummary

	s.People = len(people)
	for _, p := range people {
		s.TotalPlannedHours += p.PlannedHours
		s.TotalRealizedHours += p.RealizedHours
	}
	if s.TotalPlannedHours > 0 {
		s.OverallPercent = round1(s.TotalRealizedHours / s.TotalPlannedHours * 100)
	}

	for _, rec := range records {
		switch rec.Status {
		case model.StatusCompleted:
			s.CoursesCompleted++
		case model.StatusInProgress:
			s.CoursesInProgress++
		default:
			s.CoursesPending++
		}
	}
	return s
}

// GroupCourses groups records per person for course-level listings, keeping
// people that are not in the plan (marked InPlan=false). Groups follow
// first-appearance order in the records; within a group, courses sort
// Completed, then InProgress, then Pending, preserving record order inside
// each status.
func GroupCourses(plan []model.PlanEntry, records []model.CourseRecord) []model.PersonCourses {
	planned := make(map[string]struct{}, len(plan))
	for _, p := range plan {
		planned[p.PersonID] = struct{}{}
	}

	index := make(map[string]int)
	var groups []model.PersonCourses
	for _, rec := range records {
		i, ok := index[rec.PersonID]
		if !ok {
			i = len(groups)
			index[rec.PersonID] = i
			_, inPlan := planned[rec.PersonID]
			groups = append(groups, model.PersonCourses{
				PersonID:   rec.PersonID,
				PersonName: rec.PersonName,
				InPlan:     inPlan,
			})
		}
		groups[i].Courses = append(groups[i].Courses, rec)
	}

	for i := range groups {
		sort.SliceStable(groups[i].Courses, func(a, b int) bool {
			return statusRank(groups[i].Courses[a].Status) < statusRank(groups[i].Courses[b].Status)
		})
	}
	return groups
}

// Unplanned returns the ids of people that appear in the records but not in
// the plan, in first-appearance order.
func Unplanned(plan []model.PlanEntry, records []model.CourseRecord) []string {
	planned := make(map[string]struct{}, len(plan))
	for _, p := range plan {
		planned[p.PersonID] = struct{}{}
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, rec := range records {
		if _, ok := planned[rec.PersonID]; ok {
			continue
		}
		if _, dup := seen[rec.PersonID]; dup {
			continue
		}
		seen[rec.PersonID] = struct{}{}
		ids = append(ids, rec.PersonID)
	}
	return ids
}

func statusRank(s model.CourseStatus) int {
	switch s {
	case model.StatusCompleted:
		return 0
	case model.StatusInProgress:
		return 1
	default:
		return 2
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
