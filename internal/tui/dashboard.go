package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

// Stats holds the aggregate counts shown on the dashboard.
type Stats struct {
	Total        int
	Active       int
	Completed    int
	HighPriority int // high priority and not completed
}

// ComputeStats derives the dashboard aggregates from a task list.
func ComputeStats(tasks []api.Task) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
		} else {
			s.Active++
			if t.Priority == api.PriorityHigh {
				s.HighPriority++
			}
		}
	}
	return s
}

// CompletedPercent returns the share of completed tasks, 0 when empty.
func (s Stats) CompletedPercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(float64(s.Completed)/float64(s.Total)*100 + 0.5)
}

// renderDashboard renders the greeting and the four stat panels.
func (a *App) renderDashboard() string {
	var b strings.Builder

	name := ""
	if u := a.session.User(); u != nil {
		name = u.Email
		if at := strings.Index(name, "@"); at > 0 {
			name = name[:at]
		}
	}
	b.WriteString(styles.Title.Render(fmt.Sprintf("Welcome, %s!", name)))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Manage your tasks and reach your daily goals."))
	b.WriteString("\n\n")

	if a.loading && !a.statsLoaded {
		b.WriteString(a.spinner.View())
		b.WriteString(" Loading statistics...")
		return b.String()
	}

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statPanel("Total", fmt.Sprintf("%d", a.stats.Total), "all your tasks", styles.Highlight),
		statPanel("Active", fmt.Sprintf("%d", a.stats.Active), "in progress", styles.WarningColor),
		statPanel("Completed", fmt.Sprintf("%d", a.stats.Completed),
			fmt.Sprintf("%d%% done", a.stats.CompletedPercent()), styles.SuccessColor),
		statPanel("High Priority", fmt.Sprintf("%d", a.stats.HighPriority), "needs attention", styles.ErrorColor),
	)
	b.WriteString(panels)

	return b.String()
}

// statPanel renders a single stat card.
func statPanel(label, value, caption string, color lipgloss.TerminalColor) string {
	content := styles.StatLabel.Render(label) + "\n" +
		styles.StatValue.Foreground(color).Render(value) + "\n" +
		styles.StatLabel.Render(caption)
	return styles.StatPanel.Render(content)
}
