package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

// notifyDueCmd sends a desktop notification when tasks are due today.
// Notification failures are ignored; the TUI keeps working without a
// notification daemon.
func notifyDueCmd(tasks []api.Task) tea.Cmd {
	return func() tea.Msg {
		var due []api.Task
		for _, t := range tasks {
			if !t.Completed && t.IsDueToday() {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			return nil
		}

		var msg string
		if len(due) == 1 {
			msg = fmt.Sprintf("%q is due today", due[0].Title)
		} else {
			msg = fmt.Sprintf("%d tasks are due today", len(due))
		}
		_ = beeep.Notify("TaskMaster", msg, "")
		return nil
	}
}
