package model

// PersonProgress is the per-person merge of plan and realized hours.
// RemainingHours is an unclamped subtraction: a negative value means the
// person over-delivered against their plan.
type PersonProgress struct {
	PersonID        string
	PersonName      string
	PlannedHours    float64
	RealizedHours   float64
	PercentComplete float64 // rounded to 1 decimal; 0 when PlannedHours is 0
	RemainingHours  float64
}

// TeamSummary holds run-level aggregates across all people and records.
type TeamSummary struct {
	People             int
	TotalPlannedHours  float64
	TotalRealizedHours float64
	OverallPercent     float64

	CoursesCompleted  int
	CoursesInProgress int
	CoursesPending    int
}

// PersonCourses groups a person's course records for course-level listings.
// People absent from the plan still appear here (they are excluded from
// PersonProgress only).
type PersonCourses struct {
	PersonID   string
	PersonName string
	InPlan     bool
	Courses    []CourseRecord
}
