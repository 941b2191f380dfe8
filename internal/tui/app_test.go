package tui

import (
	"strings"
	"testing"
	"time"

	"coursepace/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

func testData() Data {
	return Data{
		AsOf:     time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Deadline: time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC),
		Summary:  model.TeamSummary{People: 2, TotalPlannedHours: 100},
		People: []model.PersonProgress{
			{PersonID: "1", PersonName: "Ana", PlannedHours: 100, RealizedHours: 40, PercentComplete: 40, RemainingHours: 60},
			{PersonID: "2", PersonName: "Bruno", PlannedHours: 50, RealizedHours: 50, PercentComplete: 100},
		},
		Pace: model.PaceReport{UsableDays: 14, EffectiveDays: 9, CalendarDaysRemaining: 19},
		Groups: []model.PersonCourses{
			{PersonID: "1", PersonName: "Ana", InPlan: true, Courses: []model.CourseRecord{
				{PersonID: "1", CourseName: "Go Fundamentals", Hours: 40, Status: model.StatusCompleted},
			}},
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	a := NewApp(testData(), nil)

	m, _ := a.Update(keyMsg("a"))
	a = m.(App)
	if a.activeTab != 2 {
		t.Errorf("activeTab after 'a' = %d, want 2", a.activeTab)
	}

	m, _ = a.Update(keyMsg("l"))
	a = m.(App)
	if a.activeTab != 3 {
		t.Errorf("activeTab after 'l' = %d, want 3", a.activeTab)
	}

	// Wraps around
	m, _ = a.Update(keyMsg("l"))
	a = m.(App)
	if a.activeTab != 0 {
		t.Errorf("activeTab after wrap = %d, want 0", a.activeTab)
	}
}

func TestCursorClampsToPeople(t *testing.T) {
	a := NewApp(testData(), nil)
	a.activeTab = 1

	for i := 0; i < 10; i++ {
		m, _ := a.Update(keyMsg("j"))
		a = m.(App)
	}
	if a.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (last person)", a.cursor)
	}

	m, _ := a.Update(keyMsg("g"))
	a = m.(App)
	if a.cursor != 0 {
		t.Errorf("cursor after 'g' = %d, want 0", a.cursor)
	}
}

func TestReloadShrinksCursor(t *testing.T) {
	a := NewApp(testData(), nil)
	a.activeTab = 1
	a.cursor = 1

	smaller := testData()
	smaller.People = smaller.People[:1]
	m, _ := a.Update(ReloadedMsg{Data: smaller})
	a = m.(App)
	if a.cursor != 0 {
		t.Errorf("cursor after shrinking reload = %d, want 0", a.cursor)
	}
}

func TestViewBeforeSizeIsEmpty(t *testing.T) {
	a := NewApp(testData(), nil)
	if v := a.View(); v != "" {
		t.Errorf("View() before WindowSizeMsg = %q, want empty", v)
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := NewApp(testData(), nil)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	a = m.(App)
	if !strings.Contains(a.View(), "too narrow") {
		t.Error("View() at 40 cols should report the terminal is too narrow")
	}
}

func TestQuitKeys(t *testing.T) {
	a := NewApp(testData(), nil)
	for _, key := range []string{"q"} {
		_, cmd := a.Update(keyMsg(key))
		if cmd == nil {
			t.Errorf("key %q should produce a quit command", key)
		}
	}
}

func TestTruncStr(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"a longer course name", 10, "a longer …"},
		{"anything", 0, ""},
	}
	for _, c := range cases {
		if got := truncStr(c.in, c.limit); got != c.want {
			t.Errorf("truncStr(%q, %d) = %q, want %q", c.in, c.limit, got, c.want)
		}
	}
}

func TestPadAndTruncateHeight(t *testing.T) {
	s := "a\nb\nc"
	if got := truncateHeight(s, 2); got != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", got, "a\nb")
	}
	padded := padHeight(s, 5)
	if n := strings.Count(padded, "\n"); n != 4 {
		t.Errorf("padHeight newline count = %d, want 4", n)
	}
}
