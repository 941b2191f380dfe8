// Package model defines domain types for training plans, course records,
// and the derived progress and pace projections.
package model

import "time"

// PlanEntry is one row of the training plan: a person and their total
// planned hour budget. PersonID is unique within a plan.
type PlanEntry struct {
	PersonID     string
	PersonName   string
	PlannedHours float64
}

// CourseStatus is the canonical completion state of a course record.
type CourseStatus int

const (
	StatusPending CourseStatus = iota
	StatusInProgress
	StatusCompleted
)

// String returns the display label for the status.
func (s CourseStatus) String() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	default:
		return "Pending"
	}
}

// CourseRecord is one row of the records table: a single course assigned
// to a person. CompletionFlag carries the raw free-text value from the
// source data; Status is derived from it by the normalizer and is the only
// field trusted downstream.
type CourseRecord struct {
	PersonID       string
	PersonName     string
	CourseName     string
	Hours          float64
	CompletionFlag string
	StartDate      *time.Time // nil when the source has no date (blank or "-")

	Status CourseStatus
}
