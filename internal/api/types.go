// Package api provides a client for the TaskMaster REST API.
package api

import (
	"fmt"
	"time"
)

// Priority is one of the three task priority levels.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Normalize maps an empty or unknown priority to the medium default.
// Only form input goes through this; server values are used as-is.
func (p Priority) Normalize() Priority {
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// Label returns a short display label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// Task represents a TaskMaster task. The server owns the record; the
// client holds a cached copy keyed by ID.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	DueDate     string   `json:"dueDate,omitempty"` // YYYY-MM-DD
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// User is the profile returned for an authenticated session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credentials is the request body for login and register.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Every field is sent; the list view updates whole records.
type UpdateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Completed   bool     `json:"completed"`
	DueDate     string   `json:"dueDate,omitempty"`
}

// UpdateFrom fills the request with every field of an existing task.
func UpdateFrom(t Task) UpdateTaskRequest {
	return UpdateTaskRequest{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Completed:   t.Completed,
		DueDate:     t.DueDate,
	}
}

// IsOverdue returns true if the task has a due date in the past and is
// not completed.
func (t *Task) IsOverdue() bool {
	if t.DueDate == "" || t.Completed {
		return false
	}

	dueDate, err := time.Parse("2006-01-02", t.DueDate)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return dueDate.Before(today)
}

// IsDueToday returns true if the task is due today.
func (t *Task) IsDueToday() bool {
	if t.DueDate == "" {
		return false
	}

	dueDate, err := time.Parse("2006-01-02", t.DueDate)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return dueDate.Equal(today)
}

// DueDisplay returns a human-readable due date string.
func (t *Task) DueDisplay() string {
	if t.DueDate == "" {
		return ""
	}

	dueDate, err := time.Parse("2006-01-02", t.DueDate)
	if err != nil {
		return t.DueDate
	}

	today := time.Now().Truncate(24 * time.Hour)
	diff := int(dueDate.Sub(today).Hours() / 24)

	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff < 7:
		return dueDate.Weekday().String()
	default:
		return dueDate.Format("Jan 2")
	}
}

// CreatedDisplay formats the server-assigned creation timestamp for
// list rendering. Falls back to the raw value on parse failure.
func (t *Task) CreatedDisplay() string {
	if t.CreatedAt == "" {
		return ""
	}
	created, err := time.Parse(time.RFC3339, t.CreatedAt)
	if err != nil {
		return t.CreatedAt
	}
	return created.Local().Format("Jan 2, 2006")
}
