package tui

import (
	"testing"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

func TestTaskFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		due     string
		wantOK  bool
		wantErr string
	}{
		{
			name:   "title only",
			title:  "Buy milk",
			wantOK: true,
		},
		{
			name:    "empty title",
			title:   "",
			wantOK:  false,
			wantErr: "Title is required",
		},
		{
			name:    "whitespace title",
			title:   "   ",
			wantOK:  false,
			wantErr: "Title is required",
		},
		{
			name:   "valid due date",
			title:  "Buy milk",
			due:    "2026-09-15",
			wantOK: true,
		},
		{
			name:    "malformed due date",
			title:   "Buy milk",
			due:     "next tuesday",
			wantOK:  false,
			wantErr: "Due date must be YYYY-MM-DD",
		},
		{
			name:    "wrong date format",
			title:   "Buy milk",
			due:     "15/09/2026",
			wantOK:  false,
			wantErr: "Due date must be YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewTaskForm()
			form.TitleInput.SetValue(tt.title)
			form.DueInput.SetValue(tt.due)

			if got := form.Validate(); got != tt.wantOK {
				t.Errorf("Validate() = %v, want %v", got, tt.wantOK)
			}
			if form.ErrText != tt.wantErr {
				t.Errorf("ErrText = %q, want %q", form.ErrText, tt.wantErr)
			}
		})
	}
}

func TestNewEditTaskFormPrefill(t *testing.T) {
	task := api.Task{
		ID:          "7",
		Title:       "Water plants",
		Description: "balcony",
		Priority:    api.PriorityHigh,
		Completed:   true,
		DueDate:     "2026-09-01",
	}

	form := NewEditTaskForm(task)

	if form.Mode != "edit" || form.TaskID != "7" {
		t.Errorf("Mode/TaskID = %q/%q, want edit/7", form.Mode, form.TaskID)
	}
	if form.TitleInput.Value() != "Water plants" {
		t.Errorf("title = %q", form.TitleInput.Value())
	}
	if form.DescriptionInput.Value() != "balcony" {
		t.Errorf("description = %q", form.DescriptionInput.Value())
	}
	if form.DueInput.Value() != "2026-09-01" {
		t.Errorf("due = %q", form.DueInput.Value())
	}
	if form.Priority != api.PriorityHigh {
		t.Errorf("priority = %q", form.Priority)
	}
}

func TestToUpdateRequestPreservesCompleted(t *testing.T) {
	task := api.Task{ID: "7", Title: "Water plants", Completed: true, Priority: api.PriorityLow}
	form := NewEditTaskForm(task)
	form.TitleInput.SetValue("Water all plants")

	req := form.ToUpdateRequest()
	if req.Title != "Water all plants" {
		t.Errorf("Title = %q", req.Title)
	}
	if !req.Completed {
		t.Error("editing fields must not clear the completed flag")
	}
}

func TestToCreateRequestTrimsAndNormalizes(t *testing.T) {
	form := NewTaskForm()
	form.TitleInput.SetValue("  Buy milk  ")
	form.DescriptionInput.SetValue(" 2%  ")
	form.Priority = ""

	req := form.ToCreateRequest()
	if req.Title != "Buy milk" {
		t.Errorf("Title = %q, want trimmed", req.Title)
	}
	if req.Description != "2%" {
		t.Errorf("Description = %q, want trimmed", req.Description)
	}
	if req.Priority != api.PriorityMedium {
		t.Errorf("Priority = %q, want medium default", req.Priority)
	}
}

func TestTaskFormReset(t *testing.T) {
	form := NewTaskForm()
	form.TitleInput.SetValue("Buy milk")
	form.DescriptionInput.SetValue("2%")
	form.DueInput.SetValue("2026-09-15")
	form.Priority = api.PriorityHigh
	form.ErrText = "old error"
	form.Submitting = true
	form.FocusedField = FormFieldDue

	form.Reset()

	if form.TitleInput.Value() != "" || form.DescriptionInput.Value() != "" || form.DueInput.Value() != "" {
		t.Error("inputs not cleared")
	}
	if form.Priority != api.PriorityMedium {
		t.Errorf("Priority = %q, want medium", form.Priority)
	}
	if form.ErrText != "" || form.Submitting {
		t.Error("error/submitting state not cleared")
	}
	if form.FocusedField != FormFieldTitle {
		t.Errorf("FocusedField = %v, want title", form.FocusedField)
	}
}

func TestPriorityCycling(t *testing.T) {
	if got := nextPriority(api.PriorityLow); got != api.PriorityMedium {
		t.Errorf("nextPriority(low) = %q", got)
	}
	if got := nextPriority(api.PriorityHigh); got != api.PriorityHigh {
		t.Errorf("nextPriority(high) = %q, want to stay at high", got)
	}
	if got := prevPriority(api.PriorityHigh); got != api.PriorityMedium {
		t.Errorf("prevPriority(high) = %q", got)
	}
	if got := prevPriority(api.PriorityLow); got != api.PriorityLow {
		t.Errorf("prevPriority(low) = %q, want to stay at low", got)
	}
}
