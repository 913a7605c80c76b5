package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// handleTasksKey drives the task list view. Input is claimed in order
// by: the open form, the delete confirmation, the focused search input,
// then list navigation.
func (a *App) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.tasks.Editing() {
		return a.handleFormKey(msg)
	}

	if a.tasks.confirmDeleteID != "" {
		return a.handleConfirmDeleteKey(msg)
	}

	if a.tasks.searching {
		return a.handleSearchKey(msg)
	}

	switch msg.String() {
	case a.keymap.Quit.Key:
		return a, tea.Quit

	case a.keymap.Back.Key, a.keymap.GoDashboard.Key:
		return a, a.navigate(ViewDashboard)

	case a.keymap.Logout.Key:
		return a.logout()

	case a.keymap.Refresh.Key:
		a.loading = true
		return a, a.loadTasks()

	case a.keymap.Down.Key, "down":
		if a.tasks.cursor < len(a.tasks.Visible())-1 {
			a.tasks.cursor++
		}
		return a, nil

	case a.keymap.Up.Key, "up":
		if a.tasks.cursor > 0 {
			a.tasks.cursor--
		}
		return a, nil

	case a.keymap.Top.Key:
		a.tasks.cursor = 0
		return a, nil

	case a.keymap.Bottom.Key:
		if n := len(a.tasks.Visible()); n > 0 {
			a.tasks.cursor = n - 1
		}
		return a, nil

	case a.keymap.AddTask.Key:
		a.tasks.StartAdd()
		return a, nil

	case a.keymap.EditTask.Key:
		if t := a.tasks.Selected(); t != nil {
			a.tasks.StartEdit(*t)
		}
		return a, nil

	case a.keymap.CompleteTask.Key:
		if t := a.tasks.Selected(); t != nil {
			a.loading = true
			return a, a.toggleTask(*t)
		}
		return a, nil

	case a.keymap.DeleteTask.Key:
		if t := a.tasks.Selected(); t != nil {
			a.tasks.confirmDeleteID = t.ID
		}
		return a, nil

	case a.keymap.CopyTitle.Key:
		return a.handleCopyTitle()

	case a.keymap.Search.Key:
		a.tasks.searching = true
		a.tasks.searchInput.Focus()
		return a, nil

	case a.keymap.CycleFilter.Key:
		a.tasks.SetFilter(a.tasks.Filter().Next())
		return a, nil

	case a.keymap.FilterAll.Key:
		a.tasks.SetFilter(FilterAll)
		return a, nil

	case a.keymap.FilterActive.Key:
		a.tasks.SetFilter(FilterActive)
		return a, nil

	case a.keymap.FilterDone.Key:
		a.tasks.SetFilter(FilterCompleted)
		return a, nil
	}

	return a, nil
}

// handleFormKey feeds input to the open add/edit form.
func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := a.tasks.form

	switch msg.String() {
	case "esc":
		a.tasks.StopEdit()
		return a, nil

	case "enter":
		// Submission is disabled while a request is in flight.
		if form.Submitting {
			return a, nil
		}
		if !form.Validate() {
			return a, nil
		}
		form.Submitting = true
		if form.Mode == "edit" {
			return a, tea.Batch(a.spinner.Tick, a.updateTask(form.TaskID, form.ToUpdateRequest()))
		}
		return a, tea.Batch(a.spinner.Tick, a.createTask(form.ToCreateRequest()))
	}

	var cmd tea.Cmd
	a.tasks.form, cmd = form.Update(msg)
	return a, cmd
}

// handleConfirmDeleteKey resolves the delete confirmation prompt. The
// API call is only issued on an explicit "y".
func (a *App) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := a.tasks.confirmDeleteID
		a.tasks.confirmDeleteID = ""
		a.loading = true
		return a, a.deleteTask(id)
	case "n", "N", "esc":
		a.tasks.confirmDeleteID = ""
		return a, nil
	}
	return a, nil
}

// handleSearchKey feeds input to the focused search field and keeps the
// derived view in sync on every keystroke.
func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.tasks.searching = false
		a.tasks.searchInput.Blur()
		a.tasks.searchInput.SetValue("")
		a.tasks.applyFilter()
		return a, nil
	case "enter", "tab":
		a.tasks.searching = false
		a.tasks.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.tasks.searchInput, cmd = a.tasks.searchInput.Update(msg)
	a.tasks.applyFilter()
	return a, cmd
}

// handleCopyTitle copies the selected task's title to the clipboard.
func (a *App) handleCopyTitle() (tea.Model, tea.Cmd) {
	t := a.tasks.Selected()
	if t == nil {
		return a, nil
	}
	if err := clipboard.WriteAll(t.Title); err != nil {
		a.statusMsg = "Failed to copy to clipboard"
		return a, nil
	}
	a.statusMsg = fmt.Sprintf("Copied: %s", t.Title)
	return a, nil
}
