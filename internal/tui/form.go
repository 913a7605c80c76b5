package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

// FormField represents which field is currently focused in the form.
type FormField int

const (
	FormFieldTitle FormField = iota
	FormFieldDescription
	FormFieldPriority
	FormFieldDue
	FormFieldSubmit
)

const formFieldCount = 5

// TaskForm manages the state of the add/edit task form. It produces a
// validated payload; the list controller performs the network call.
type TaskForm struct {
	// Mode
	Mode   string // "add" or "edit"
	TaskID string // For edit mode

	// Inputs
	TitleInput       textinput.Model
	DescriptionInput textinput.Model
	DueInput         textinput.Model

	// Selections
	Priority api.Priority

	// Form state
	FocusedField FormField
	Submitting   bool // disables submission while a request is in flight
	ErrText      string

	// Preserved through edits; toggle-complete is a separate action.
	completed bool
}

// NewTaskForm creates a new task form for adding a task.
func NewTaskForm() *TaskForm {
	titleInput := textinput.New()
	titleInput.Placeholder = "Task title"
	titleInput.Focus()
	titleInput.CharLimit = 200
	titleInput.Width = 50

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.CharLimit = 1000
	descInput.Width = 50

	dueInput := textinput.New()
	dueInput.Placeholder = "Due date YYYY-MM-DD (optional)"
	dueInput.CharLimit = 10
	dueInput.Width = 50

	return &TaskForm{
		Mode:             "add",
		TitleInput:       titleInput,
		DescriptionInput: descInput,
		DueInput:         dueInput,
		Priority:         api.PriorityMedium,
		FocusedField:     FormFieldTitle,
	}
}

// NewEditTaskForm creates a task form pre-populated from an existing task.
func NewEditTaskForm(task api.Task) *TaskForm {
	form := NewTaskForm()
	form.Mode = "edit"
	form.TaskID = task.ID
	form.completed = task.Completed

	form.TitleInput.SetValue(task.Title)
	form.DescriptionInput.SetValue(task.Description)
	form.DueInput.SetValue(task.DueDate)
	form.Priority = task.Priority.Normalize()

	return form
}

// Reset returns the form to its defaults. Used after a successful
// create; an edit form is simply discarded.
func (f *TaskForm) Reset() {
	f.TitleInput.SetValue("")
	f.DescriptionInput.SetValue("")
	f.DueInput.SetValue("")
	f.Priority = api.PriorityMedium
	f.ErrText = ""
	f.Submitting = false
	f.blurCurrent()
	f.FocusedField = FormFieldTitle
	f.focusCurrent()
}

// Update handles input for the form.
func (f *TaskForm) Update(msg tea.Msg) (*TaskForm, tea.Cmd) {
	var cmds []tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.nextField()
			return f, nil
		case "shift+tab", "up":
			f.prevField()
			return f, nil
		}

		if f.FocusedField == FormFieldPriority {
			switch keyMsg.String() {
			case "1":
				f.Priority = api.PriorityLow
				return f, nil
			case "2":
				f.Priority = api.PriorityMedium
				return f, nil
			case "3":
				f.Priority = api.PriorityHigh
				return f, nil
			case "h", "left":
				f.Priority = prevPriority(f.Priority)
				return f, nil
			case "l", "right":
				f.Priority = nextPriority(f.Priority)
				return f, nil
			}
		}
	}

	switch f.FocusedField {
	case FormFieldTitle:
		var cmd tea.Cmd
		f.TitleInput, cmd = f.TitleInput.Update(msg)
		cmds = append(cmds, cmd)
	case FormFieldDescription:
		var cmd tea.Cmd
		f.DescriptionInput, cmd = f.DescriptionInput.Update(msg)
		cmds = append(cmds, cmd)
	case FormFieldDue:
		var cmd tea.Cmd
		f.DueInput, cmd = f.DueInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

func nextPriority(p api.Priority) api.Priority {
	switch p {
	case api.PriorityLow:
		return api.PriorityMedium
	case api.PriorityMedium:
		return api.PriorityHigh
	default:
		return api.PriorityHigh
	}
}

func prevPriority(p api.Priority) api.Priority {
	switch p {
	case api.PriorityHigh:
		return api.PriorityMedium
	case api.PriorityMedium:
		return api.PriorityLow
	default:
		return api.PriorityLow
	}
}

// nextField moves focus to the next field.
func (f *TaskForm) nextField() {
	f.blurCurrent()
	f.FocusedField = (f.FocusedField + 1) % formFieldCount
	f.focusCurrent()
}

// prevField moves focus to the previous field.
func (f *TaskForm) prevField() {
	f.blurCurrent()
	f.FocusedField = (f.FocusedField - 1 + formFieldCount) % formFieldCount
	f.focusCurrent()
}

func (f *TaskForm) blurCurrent() {
	switch f.FocusedField {
	case FormFieldTitle:
		f.TitleInput.Blur()
	case FormFieldDescription:
		f.DescriptionInput.Blur()
	case FormFieldDue:
		f.DueInput.Blur()
	}
}

func (f *TaskForm) focusCurrent() {
	switch f.FocusedField {
	case FormFieldTitle:
		f.TitleInput.Focus()
	case FormFieldDescription:
		f.DescriptionInput.Focus()
	case FormFieldDue:
		f.DueInput.Focus()
	}
}

// Validate checks the form and records a message for display. Title is
// the only required field; a non-empty due date must parse.
func (f *TaskForm) Validate() bool {
	if strings.TrimSpace(f.TitleInput.Value()) == "" {
		f.ErrText = "Title is required"
		return false
	}
	if due := strings.TrimSpace(f.DueInput.Value()); due != "" {
		if _, err := time.Parse("2006-01-02", due); err != nil {
			f.ErrText = "Due date must be YYYY-MM-DD"
			return false
		}
	}
	f.ErrText = ""
	return true
}

// ToCreateRequest converts the form to a CreateTaskRequest.
func (f *TaskForm) ToCreateRequest() api.CreateTaskRequest {
	return api.CreateTaskRequest{
		Title:       strings.TrimSpace(f.TitleInput.Value()),
		Description: strings.TrimSpace(f.DescriptionInput.Value()),
		Priority:    f.Priority.Normalize(),
		DueDate:     strings.TrimSpace(f.DueInput.Value()),
	}
}

// ToUpdateRequest converts the form to an UpdateTaskRequest, carrying
// the task's completed flag through unchanged.
func (f *TaskForm) ToUpdateRequest() api.UpdateTaskRequest {
	return api.UpdateTaskRequest{
		Title:       strings.TrimSpace(f.TitleInput.Value()),
		Description: strings.TrimSpace(f.DescriptionInput.Value()),
		Priority:    f.Priority.Normalize(),
		Completed:   f.completed,
		DueDate:     strings.TrimSpace(f.DueInput.Value()),
	}
}

// View renders the form.
func (f *TaskForm) View() string {
	var b strings.Builder

	title := "New Task"
	if f.Mode == "edit" {
		title = "Edit Task"
	}
	b.WriteString(styles.DialogTitle.Render(title))
	b.WriteString("\n\n")

	if f.ErrText != "" {
		b.WriteString(styles.ErrorBanner.Render(f.ErrText))
		b.WriteString("\n\n")
	}

	b.WriteString(f.renderField("Title *", f.TitleInput.View(), FormFieldTitle))
	b.WriteString("\n")
	b.WriteString(f.renderField("Description", f.DescriptionInput.View(), FormFieldDescription))
	b.WriteString("\n")
	b.WriteString(f.renderPriorityField())
	b.WriteString("\n")
	b.WriteString(f.renderField("Due Date", f.DueInput.View(), FormFieldDue))
	b.WriteString("\n\n")

	submitStyle := styles.HelpDesc
	if f.FocusedField == FormFieldSubmit {
		submitStyle = styles.HelpKey
	}
	submitText := "[ Add Task ]"
	if f.Mode == "edit" {
		submitText = "[ Save Changes ]"
	}
	if f.Submitting {
		submitText = "[ Saving... ]"
	}
	b.WriteString(submitStyle.Render(submitText))
	b.WriteString("\n\n")

	helpText := "Tab: next field | Shift+Tab: previous | Enter: submit | Esc: cancel"
	if f.FocusedField == FormFieldPriority {
		helpText = "1/2/3: low/medium/high | h/l: adjust | Tab: next field"
	}
	b.WriteString(styles.HelpDesc.Render(helpText))

	return b.String()
}

// renderField renders a form field with label.
func (f *TaskForm) renderField(label, input string, field FormField) string {
	labelStyle := styles.InputLabel
	if f.FocusedField == field {
		labelStyle = labelStyle.Foreground(styles.Highlight)
	}

	return fmt.Sprintf("%s\n%s", labelStyle.Render(label), input)
}

// renderPriorityField renders the priority selector.
func (f *TaskForm) renderPriorityField() string {
	labelStyle := styles.InputLabel
	if f.FocusedField == FormFieldPriority {
		labelStyle = labelStyle.Foreground(styles.Highlight)
	}

	var options []string
	for _, p := range []api.Priority{api.PriorityLow, api.PriorityMedium, api.PriorityHigh} {
		style := styles.GetPriorityStyle(p)
		if p == f.Priority {
			style = style.Bold(true).Underline(true)
		}
		options = append(options, style.Render(p.Label()))
	}

	selector := strings.Join(options, "  ")
	if f.FocusedField == FormFieldPriority {
		selector = "[ " + selector + " ]"
	}

	return fmt.Sprintf("%s\n%s", labelStyle.Render("Priority"), selector)
}
