package pipeline

import (
	"testing"
	"time"

	"coursepace/internal/model"
)

func rec(flag string, start *time.Time) model.CourseRecord {
	return model.CourseRecord{
		PersonID:       "1",
		PersonName:     "A",
		CourseName:     "X",
		Hours:          10,
		CompletionFlag: flag,
		StartDate:      start,
	}
}

func datePtr(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return &d
}

func TestNormalizeStatus_CompletedTokens(t *testing.T) {
	for _, flag := range []string{"sim", "Sim", "SIM", "s", "yes", "y", "  Yes  ", "Concluído"} {
		if got := NormalizeStatus(rec(flag, nil)); got != model.StatusCompleted {
			t.Errorf("NormalizeStatus(%q) = %v, want Completed", flag, got)
		}
	}
}

func TestNormalizeStatus_InProgressTokens(t *testing.T) {
	for _, flag := range []string{"em andamento", "Andamento", "In Progress", "in-progress"} {
		if got := NormalizeStatus(rec(flag, nil)); got != model.StatusInProgress {
			t.Errorf("NormalizeStatus(%q) = %v, want InProgress", flag, got)
		}
	}
}

func TestNormalizeStatus_UnrecognizedDefaultsToPending(t *testing.T) {
	// Permissive default: unknown flag text degrades to Pending, no error.
	for _, flag := range []string{"não", "no", "n", "talvez", ""} {
		if got := NormalizeStatus(rec(flag, nil)); got != model.StatusPending {
			t.Errorf("NormalizeStatus(%q) = %v, want Pending", flag, got)
		}
	}
}

func TestNormalizeStatus_StartDateUpgradesPending(t *testing.T) {
	start := datePtr(t, "2026-02-10")

	if got := NormalizeStatus(rec("não", start)); got != model.StatusInProgress {
		t.Errorf("pending record with start date = %v, want InProgress", got)
	}
}

func TestNormalizeStatus_StartDateNeverDowngradesCompleted(t *testing.T) {
	start := datePtr(t, "2026-02-10")

	if got := NormalizeStatus(rec("sim", start)); got != model.StatusCompleted {
		t.Errorf("completed record with start date = %v, want Completed", got)
	}
}

func TestNormalizeAll_CollectsDistinctUnknownTokens(t *testing.T) {
	records := []model.CourseRecord{
		rec("sim", nil),
		rec("nope", nil),
		rec("Nope", nil),
		rec("maybe", nil),
		rec("", nil),
	}

	normalized, unknown := NormalizeAll(records)

	if len(normalized) != len(records) {
		t.Fatalf("NormalizeAll returned %d records, want %d", len(normalized), len(records))
	}
	if normalized[0].Status != model.StatusCompleted {
		t.Errorf("record 0 status = %v, want Completed", normalized[0].Status)
	}
	if len(unknown) != 2 {
		t.Fatalf("unknown tokens = %v, want [nope maybe]", unknown)
	}
	if unknown[0] != "nope" || unknown[1] != "maybe" {
		t.Errorf("unknown tokens = %v, want [nope maybe]", unknown)
	}
}

func TestNormalizeAll_DoesNotMutateInput(t *testing.T) {
	records := []model.CourseRecord{rec("sim", nil)}

	NormalizeAll(records)

	if records[0].Status != model.StatusPending {
		t.Errorf("input slice mutated: status = %v", records[0].Status)
	}
}
