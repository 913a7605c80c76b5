package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

// StatusFilter selects which completion states the list shows.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterActive
	FilterCompleted
)

// Label returns the display name of the filter.
func (f StatusFilter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next cycles all -> active -> completed -> all.
func (f StatusFilter) Next() StatusFilter {
	return (f + 1) % 3
}

// Matches reports whether the task passes the status filter.
func (f StatusFilter) Matches(t api.Task) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// FilterTasks derives the visible subset: status filter combined with a
// case-insensitive substring match against title and description. An
// empty query applies no text filter. Order is preserved.
func FilterTasks(tasks []api.Task, filter StatusFilter, query string) []api.Task {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if !filter.Matches(t) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// RowState is the tagged variant of a task row: each row is either
// plainly viewed or holds the inline editor.
type RowState int

const (
	RowViewing RowState = iota
	RowEditing
)

// TaskList is the list controller. It owns the authoritative in-memory
// task slice and a derived, read-only filtered view; every mutation goes
// through the API and is followed by a full re-fetch.
type TaskList struct {
	tasks    []api.Task // last full server response
	filtered []api.Task // derived, never mutated directly

	filter      StatusFilter
	searchInput textinput.Model
	searching   bool // search input has focus

	cursor int

	// At most one row is editing at a time, keyed by task ID.
	editingID string
	form      *TaskForm // non-nil while adding or editing

	confirmDeleteID string
}

// NewTaskList creates an empty list controller.
func NewTaskList() *TaskList {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search tasks..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	return &TaskList{
		searchInput: searchInput,
	}
}

// SetTasks replaces the authoritative list with a fresh server response
// and recomputes the derived view.
func (m *TaskList) SetTasks(tasks []api.Task) {
	m.tasks = tasks
	m.applyFilter()

	// A mutation may have removed the task being edited or confirmed.
	if m.editingID != "" && m.byID(m.editingID) == nil {
		m.StopEdit()
	}
	if m.confirmDeleteID != "" && m.byID(m.confirmDeleteID) == nil {
		m.confirmDeleteID = ""
	}
}

// Tasks returns the authoritative list.
func (m *TaskList) Tasks() []api.Task {
	return m.tasks
}

// Visible returns the derived filtered view.
func (m *TaskList) Visible() []api.Task {
	return m.filtered
}

// Query returns the current search text.
func (m *TaskList) Query() string {
	return m.searchInput.Value()
}

// Filter returns the current status filter.
func (m *TaskList) Filter() StatusFilter {
	return m.filter
}

// SetFilter sets the status filter and recomputes the view.
func (m *TaskList) SetFilter(f StatusFilter) {
	m.filter = f
	m.applyFilter()
}

// applyFilter recomputes the derived view. Called whenever the task
// list, status filter, or search text changes.
func (m *TaskList) applyFilter() {
	m.filtered = FilterTasks(m.tasks, m.filter, m.searchInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the task under the cursor, or nil.
func (m *TaskList) Selected() *api.Task {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return &m.filtered[m.cursor]
}

// byID finds a task in the authoritative list.
func (m *TaskList) byID(id string) *api.Task {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return &m.tasks[i]
		}
	}
	return nil
}

// RowState returns the variant for the row with the given task ID.
func (m *TaskList) RowState(id string) RowState {
	if id != "" && id == m.editingID {
		return RowEditing
	}
	return RowViewing
}

// StartAdd opens the add form. Any in-progress edit is abandoned; the
// single-editor invariant covers the add form too.
func (m *TaskList) StartAdd() {
	m.editingID = ""
	m.confirmDeleteID = ""
	m.form = NewTaskForm()
}

// StartEdit opens the inline editor on the given task, ending any
// previous edit without merging.
func (m *TaskList) StartEdit(t api.Task) {
	m.editingID = t.ID
	m.confirmDeleteID = ""
	m.form = NewEditTaskForm(t)
}

// StopEdit discards the open form, if any.
func (m *TaskList) StopEdit() {
	m.editingID = ""
	m.form = nil
}

// Editing reports whether a form (add or edit) is open.
func (m *TaskList) Editing() bool {
	return m.form != nil
}
