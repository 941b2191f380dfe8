package source

import (
	"errors"
	"fmt"

	"coursepace/internal/model"
)

// validatePlan checks the parsed plan rows and reports every problem found,
// not just the first.
func validatePlan(path string, entries []model.PlanEntry) error {
	var errs []error
	seen := make(map[string]int, len(entries))

	for i, e := range entries {
		line := i + 2

		if e.PersonID == "" {
			errs = append(errs, fmt.Errorf("%s line %d: person_id is required", path, line))
		}
		if e.PersonName == "" {
			errs = append(errs, fmt.Errorf("%s line %d: person_name is required", path, line))
		}
		if e.PlannedHours < 0 {
			errs = append(errs, fmt.Errorf("%s line %d: planned_hours must not be negative (got %v)", path, line, e.PlannedHours))
		}
		if e.PersonID != "" {
			if prev, dup := seen[e.PersonID]; dup {
				errs = append(errs, fmt.Errorf("%s line %d: duplicate person_id %q (first seen on line %d)", path, line, e.PersonID, prev))
			} else {
				seen[e.PersonID] = line
			}
		}
	}

	return errors.Join(errs...)
}

func validateRecords(path string, records []model.CourseRecord) error {
	var errs []error

	for i, r := range records {
		line := i + 2

		if r.PersonID == "" {
			errs = append(errs, fmt.Errorf("%s line %d: person_id is required", path, line))
		}
		if r.CourseName == "" {
			errs = append(errs, fmt.Errorf("%s line %d: course is required", path, line))
		}
		if r.Hours < 0 {
			errs = append(errs, fmt.Errorf("%s line %d: hours must not be negative (got %v)", path, line, r.Hours))
		}
	}

	return errors.Join(errs...)
}
