// Package source loads and validates the two input datasets: the training
// plan and the course records. Validation is fail-fast: a structurally
// broken file aborts the run before any aggregation happens.
package source

import "coursepace/internal/model"

// Dataset bundles the two parsed input tables. Records come out with their
// raw completion flags; status normalization is the engine's job.
type Dataset struct {
	Plan    []model.PlanEntry
	Records []model.CourseRecord
}

// Plan table columns. Aliases cover the column names used by the original
// spreadsheet exports, so a CSV dumped straight from them loads unchanged.
const (
	colPersonID     = "person_id"
	colPersonName   = "person_name"
	colPlannedHours = "planned_hours"
	colCourse       = "course"
	colHours        = "hours"
	colCompleted    = "completed"
	colStartDate    = "start_date"
)

var headerAliases = map[string]string{
	"id colaborador(a)":  colPersonID,
	"colaborador(a)":     colPersonName,
	"horas totais":       colPlannedHours,
	"curso":              colCourse,
	"carga horária":      colHours,
	"carga horaria":      colHours,
	"finalizou o curso?": colCompleted,
	"data de início":     colStartDate,
	"data de inicio":     colStartDate,
}

// planColumns and recordColumns are the required column sets per table.
// start_date is optional on records.
var (
	planColumns   = []string{colPersonID, colPersonName, colPlannedHours}
	recordColumns = []string{colPersonID, colPersonName, colCourse, colHours, colCompleted}
)
