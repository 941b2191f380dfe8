// Package tui provides the interactive Bubble Tea dashboard for coursepace.
package tui

import (
	"fmt"
	"strings"
	"time"

	"coursepace/internal/cli"
	"coursepace/internal/model"
	"coursepace/internal/tui/components"
	"coursepace/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Data is the full snapshot the dashboard renders. It is computed once by
// the caller and replaced wholesale on reload.
type Data struct {
	AsOf     time.Time
	Deadline time.Time

	Summary model.TeamSummary
	People  []model.PersonProgress
	Pace    model.PaceReport
	Groups  []model.PersonCourses
}

// ReloadedMsg carries the result of a background reload.
type ReloadedMsg struct {
	Data Data
	Err  error
}

// App is the root Bubble Tea model.
type App struct {
	data   Data
	reload func() (Data, error)

	// courses per person id, derived from data.Groups
	coursesByID map[string][]model.CourseRecord

	// UI state
	width      int
	height     int
	activeTab  int
	showHelp   bool
	reloading  bool
	reloadErr  error
	cursor     int // selected person on the People tab
	courseScrl int // scroll offset on the Courses tab
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 140

	minContentHeight = 5
)

// NewApp creates the dashboard model from a pre-loaded snapshot. reload is
// invoked on the 'r' key to produce a fresh snapshot.
func NewApp(data Data, reload func() (Data, error)) App {
	a := App{data: data, reload: reload}
	a.index()
	return a
}

func (a *App) index() {
	a.coursesByID = make(map[string][]model.CourseRecord, len(a.data.Groups))
	for _, g := range a.data.Groups {
		a.coursesByID[g.PersonID] = g.Courses
	}
	if a.cursor >= len(a.data.People) {
		a.cursor = len(a.data.People) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case ReloadedMsg:
		a.reloading = false
		a.reloadErr = msg.Err
		if msg.Err == nil {
			a.data = msg.Data
			a.index()
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" || key == "q" {
			return a, tea.Quit
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "r" && !a.reloading && a.reload != nil {
			a.reloading = true
			reload := a.reload
			return a, func() tea.Msg {
				d, err := reload()
				return ReloadedMsg{Data: d, Err: err}
			}
		}

		// List navigation on the People and Courses tabs
		switch key {
		case "j", "down":
			if a.activeTab == 1 && a.cursor < len(a.data.People)-1 {
				a.cursor++
			}
			if a.activeTab == 3 {
				a.courseScrl++
			}
			return a, nil
		case "k", "up":
			if a.activeTab == 1 && a.cursor > 0 {
				a.cursor--
			}
			if a.activeTab == 3 && a.courseScrl > 0 {
				a.courseScrl--
			}
			return a, nil
		case "g":
			a.cursor = 0
			a.courseScrl = 0
			return a, nil
		case "G":
			if a.activeTab == 1 && len(a.data.People) > 0 {
				a.cursor = len(a.data.People) - 1
			}
			return a, nil
		}

		// Tab navigation
		switch key {
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}
		return a, nil
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  coursepace needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p a c", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Navigate people / scroll courses"},
		{"g G", "Jump to first / last"},
		{"r", "Reload data files"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w,
		cli.FormatDate(a.data.AsOf), cli.FormatDate(a.data.Deadline))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderPeopleTab(cw, contentH)
	case 2:
		content = a.renderPaceTab(cw)
	case 3:
		content = a.renderCoursesTab(cw, contentH)
	}

	if a.reloadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		content = errStyle.Render("  reload failed: "+a.reloadErr.Error()) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// tierColor maps a risk tier to the active theme's palette.
func tierColor(tier model.RiskTier) lipgloss.Color {
	t := theme.Active
	switch tier {
	case model.TierDone:
		return t.Green
	case model.TierComfortable:
		return t.Blue
	case model.TierGoodPace:
		return t.Cyan
	case model.TierAttention:
		return t.Yellow
	case model.TierCritical:
		return t.Orange
	default:
		return t.Red
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
