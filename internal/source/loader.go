package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"coursepace/internal/model"
)

// Load reads and validates both datasets.
func Load(planPath, recordsPath string) (*Dataset, error) {
	plan, err := LoadPlan(planPath)
	if err != nil {
		return nil, err
	}
	records, err := LoadRecords(recordsPath)
	if err != nil {
		return nil, err
	}
	return &Dataset{Plan: plan, Records: records}, nil
}

// LoadPlan reads the plan CSV: one row per person with their planned hour
// budget.
func LoadPlan(path string) ([]model.PlanEntry, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := mapColumns(path, header, planColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlanEntry, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header

		hours, err := parseHours(cell(row, cols[colPlannedHours]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: planned_hours: %w", path, line, err)
		}

		entries = append(entries, model.PlanEntry{
			PersonID:     cell(row, cols[colPersonID]),
			PersonName:   cell(row, cols[colPersonName]),
			PlannedHours: hours,
		})
	}

	if err := validatePlan(path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// LoadRecords reads the records CSV: one row per person-course with hours,
// the raw completion flag, and an optional start date.
func LoadRecords(path string) ([]model.CourseRecord, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := mapColumns(path, header, recordColumns)
	if err != nil {
		return nil, err
	}
	startCol, hasStart := cols[colStartDate]

	records := make([]model.CourseRecord, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		hours, err := parseHours(cell(row, cols[colHours]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: hours: %w", path, line, err)
		}

		rec := model.CourseRecord{
			PersonID:       cell(row, cols[colPersonID]),
			PersonName:     cell(row, cols[colPersonName]),
			CourseName:     cell(row, cols[colCourse]),
			Hours:          hours,
			CompletionFlag: cell(row, cols[colCompleted]),
		}

		if hasStart {
			start, err := parseStartDate(cell(row, startCol))
			if err != nil {
				return nil, fmt.Errorf("%s line %d: start_date: %w", path, line, err)
			}
			rec.StartDate = start
		}

		records = append(records, rec)
	}

	if err := validateRecords(path, records); err != nil {
		return nil, err
	}
	return records, nil
}

// readCSV returns the header row and the data rows.
func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // length checked against the header map instead
	r.TrimLeadingSpace = true

	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}
	return all[0], all[1:], nil
}

// mapColumns resolves the header row to canonical column indexes and
// reports every missing required column at once.
func mapColumns(path string, header []string, required []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[name]; ok {
			name = canonical
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	for _, want := range required {
		if _, ok := cols[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required column(s): %s", path, strings.Join(missing, ", "))
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseHours accepts both dot and comma decimal separators ("7.5", "7,5").
func parseHours(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value, expected a number")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// startDateLayouts are tried in order; the source data mixes ISO dates with
// Brazilian day-first dates.
var startDateLayouts = []string{"2006-01-02", "02/01/2006"}

// parseStartDate returns nil for the "no date" markers (blank or "-").
func parseStartDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	for _, layout := range startDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q (expected YYYY-MM-DD or DD/MM/YYYY)", s)
}
