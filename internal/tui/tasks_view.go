package tui

import (
	"fmt"
	"strings"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

// renderTasks renders the task list view: search/filter header, the add
// form when open, then one row per visible task.
func (a *App) renderTasks() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Tasks"))
	b.WriteString("  ")
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("[%s]", a.tasks.Filter().Label())))
	b.WriteString("\n")

	// Search bar
	if a.tasks.searching || a.tasks.Query() != "" {
		b.WriteString(a.tasks.searchInput.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Add form opens above the list; edits render inline on their row.
	if a.tasks.Editing() && a.tasks.editingID == "" {
		b.WriteString(styles.PanelFocused.Render(a.tasks.form.View()))
		b.WriteString("\n\n")
	}

	if a.loading {
		b.WriteString(a.spinner.View())
		b.WriteString(" Loading tasks...")
		return b.String()
	}

	visible := a.tasks.Visible()
	if len(visible) == 0 {
		if a.tasks.Query() != "" || a.tasks.Filter() != FilterAll {
			b.WriteString(styles.Subtitle.Render("No tasks match"))
		} else {
			b.WriteString(styles.Subtitle.Render("No tasks yet. Press 'a' to add one!"))
		}
		return b.String()
	}

	for i, task := range visible {
		switch a.tasks.RowState(task.ID) {
		case RowEditing:
			b.WriteString(styles.PanelFocused.Render(a.tasks.form.View()))
			b.WriteString("\n")
		default:
			b.WriteString(a.renderTaskRow(task, i == a.tasks.cursor))
		}
	}

	if id := a.tasks.confirmDeleteID; id != "" {
		title := ""
		if t := a.tasks.byID(id); t != nil {
			title = t.Title
		}
		b.WriteString("\n")
		prompt := fmt.Sprintf("Delete %q? (y/n)", truncate(title, 40))
		b.WriteString(styles.ErrorBanner.Render(prompt))
	}

	return b.String()
}

// renderTaskRow renders a single viewing-state row.
func (a *App) renderTaskRow(task api.Task, selected bool) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	marker := styles.GetPriorityStyle(task.Priority).Render("●")

	maxTitle := a.width - 20
	if maxTitle < 20 {
		maxTitle = 20
	}
	title := truncate(task.Title, maxTitle)

	line := fmt.Sprintf("%s %s %s", checkbox, marker, title)

	if task.DueDate != "" {
		dueStyle := styles.TaskDue
		if task.IsOverdue() {
			dueStyle = styles.TaskDueOverdue
		} else if task.IsDueToday() {
			dueStyle = styles.TaskDueToday
		}
		line += dueStyle.Render(task.DueDisplay())
	}

	rowStyle := styles.TaskItem
	switch {
	case selected:
		rowStyle = styles.TaskSelected
	case task.Completed:
		rowStyle = styles.TaskCompleted
	}

	out := rowStyle.Render(line) + "\n"

	if task.Description != "" && selected {
		desc := truncate(task.Description, a.width-10)
		out += styles.TaskDescription.Render(desc) + "\n"
	}

	return out
}

// tasksHints returns the status bar hints for the list view.
func (a *App) tasksHints() []Key {
	if a.tasks.Editing() {
		return []Key{
			{Key: "enter", Help: "save"},
			{Key: "esc", Help: "cancel"},
		}
	}
	if a.tasks.searching {
		return []Key{
			{Key: "enter", Help: "apply"},
			{Key: "esc", Help: "clear"},
		}
	}
	return []Key{
		a.keymap.AddTask,
		a.keymap.EditTask,
		a.keymap.CompleteTask,
		a.keymap.DeleteTask,
		a.keymap.Search,
		a.keymap.CycleFilter,
		{Key: "tab", Help: "dashboard"},
		a.keymap.Logout,
		a.keymap.Quit,
	}
}
