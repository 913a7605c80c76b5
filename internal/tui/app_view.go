package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	// No protected content and no redirect until the persisted token
	// has been checked.
	if a.gate == GateChecking {
		return a.centered(a.spinner.View() + " Checking session...")
	}

	var content string
	switch a.currentView {
	case ViewLogin, ViewRegister:
		content = a.centered(a.auth.View())
	case ViewDashboard:
		content = styles.App.Render(a.renderDashboard())
	case ViewTasks:
		content = styles.App.Render(a.renderTasks())
	}

	return content + "\n" + a.renderStatusBar()
}

// centered places content in the middle of the window.
func (a *App) centered(content string) string {
	return lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, content)
}

// renderStatusBar renders the bottom bar: error or status message on
// the left, key hints on the right.
func (a *App) renderStatusBar() string {
	var left string
	switch {
	case a.errText != "":
		left = styles.StatusBarError.Render(a.errText)
	case a.statusMsg != "":
		left = styles.StatusBarSuccess.Render(a.statusMsg)
	}

	var hints []Key
	switch a.currentView {
	case ViewDashboard:
		hints = []Key{
			{Key: "tab", Help: "tasks"},
			a.keymap.Refresh,
			a.keymap.Logout,
			a.keymap.Quit,
		}
	case ViewTasks:
		hints = a.tasksHints()
	}

	var parts []string
	for _, k := range hints {
		parts = append(parts,
			styles.StatusBarKey.Render(k.Key)+styles.StatusBarText.Render(" "+k.Help))
	}
	right := strings.Join(parts, styles.StatusBarText.Render(" • "))

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styles.StatusBar.Width(a.width).Render(bar)
}
