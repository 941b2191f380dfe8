// Package pipeline implements the progress aggregation and pace-projection
// engine: status normalization, plan/record merging, and deadline pacing.
// Every function here is a pure transformation of its inputs; the caller
// injects the as-of date so runs are deterministic and repeatable.
package pipeline

import (
	"strings"

	"coursepace/internal/model"
)

// Completion-flag token tables. The source data carries free text in mixed
// Portuguese/English spellings; anything not listed here falls through to
// Pending. That permissive default is deliberate: an unrecognized flag is
// flagged for visibility, never an error.
var (
	completedTokens = map[string]struct{}{
		"sim":       {},
		"s":         {},
		"yes":       {},
		"y":         {},
		"concluido": {},
		"concluído": {},
	}

	inProgressTokens = map[string]struct{}{
		"em andamento": {},
		"andamento":    {},
		"in progress":  {},
		"in-progress":  {},
		"cursando":     {},
	}
)

// NormalizeStatus classifies a record's free-text completion flag.
// A record that would default to Pending is upgraded to InProgress when it
// carries a start date; the upgrade never touches Completed records.
func NormalizeStatus(rec model.CourseRecord) model.CourseStatus {
	token := strings.ToLower(strings.TrimSpace(rec.CompletionFlag))

	if _, ok := completedTokens[token]; ok {
		return model.StatusCompleted
	}
	if _, ok := inProgressTokens[token]; ok {
		return model.StatusInProgress
	}
	if rec.StartDate != nil {
		return model.StatusInProgress
	}
	return model.StatusPending
}

// NormalizeAll derives Status on every record and returns the distinct
// unrecognized flag tokens encountered (excluding blanks), for surfacing
// to the user.
func NormalizeAll(records []model.CourseRecord) ([]model.CourseRecord, []string) {
	out := make([]model.CourseRecord, len(records))
	seen := make(map[string]struct{})
	var unknown []string

	for i, rec := range records {
		rec.Status = NormalizeStatus(rec)
		out[i] = rec

		token := strings.ToLower(strings.TrimSpace(rec.CompletionFlag))
		if token == "" {
			continue
		}
		if _, known := completedTokens[token]; known {
			continue
		}
		if _, known := inProgressTokens[token]; known {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		unknown = append(unknown, token)
	}

	return out, unknown
}
