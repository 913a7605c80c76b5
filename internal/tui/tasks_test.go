package tui

import (
	"testing"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

func sampleTasks() []api.Task {
	return []api.Task{
		{ID: "1", Title: "Buy groceries", Description: "milk and eggs", Priority: api.PriorityLow},
		{ID: "2", Title: "Write REPORT", Description: "quarterly numbers", Priority: api.PriorityHigh},
		{ID: "3", Title: "Call dentist", Completed: true, Priority: api.PriorityMedium},
		{ID: "4", Title: "Clean garage", Description: "also the report shelf", Completed: true, Priority: api.PriorityLow},
	}
}

func taskIDs(tasks []api.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}

func TestFilterTasks(t *testing.T) {
	tasks := sampleTasks()

	tests := []struct {
		name    string
		filter  StatusFilter
		query   string
		wantIDs []string
	}{
		{
			name:    "all with empty query is unchanged",
			filter:  FilterAll,
			query:   "",
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "active only",
			filter:  FilterActive,
			query:   "",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "completed only",
			filter:  FilterCompleted,
			query:   "",
			wantIDs: []string{"3", "4"},
		},
		{
			name:    "query matches title case-insensitively",
			filter:  FilterAll,
			query:   "report",
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "query matches description",
			filter:  FilterAll,
			query:   "milk",
			wantIDs: []string{"1"},
		},
		{
			name:    "query combines with status filter",
			filter:  FilterCompleted,
			query:   "report",
			wantIDs: []string{"4"},
		},
		{
			name:    "whitespace-only query applies no text filter",
			filter:  FilterAll,
			query:   "   ",
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "no matches",
			filter:  FilterAll,
			query:   "zzz",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taskIDs(FilterTasks(tasks, tt.filter, tt.query))
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got IDs %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("got IDs %v, want %v (order must be preserved)", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestFilterTasksDoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	FilterTasks(tasks, FilterCompleted, "report")
	if tasks[0].ID != "1" || len(tasks) != 4 {
		t.Error("input slice was mutated")
	}
}

func TestStatusFilterNext(t *testing.T) {
	f := FilterAll
	want := []StatusFilter{FilterActive, FilterCompleted, FilterAll}
	for _, w := range want {
		f = f.Next()
		if f != w {
			t.Fatalf("Next() = %v, want %v", f, w)
		}
	}
}

func TestTaskListSetTasksDropsStaleState(t *testing.T) {
	list := NewTaskList()
	list.SetTasks(sampleTasks())

	list.StartEdit(list.Tasks()[1])
	if !list.Editing() || list.RowState("2") != RowEditing {
		t.Fatal("edit did not open on task 2")
	}

	// Re-fetch no longer containing the edited task closes the editor.
	list.SetTasks([]api.Task{{ID: "1", Title: "Buy groceries"}})
	if list.Editing() {
		t.Error("editor left open for a task that no longer exists")
	}
}

func TestTaskListSingleEditor(t *testing.T) {
	list := NewTaskList()
	tasks := sampleTasks()
	list.SetTasks(tasks)

	list.StartEdit(tasks[0])
	list.StartEdit(tasks[1])

	if list.RowState("1") != RowViewing {
		t.Error("first edit still open after second StartEdit")
	}
	if list.RowState("2") != RowEditing {
		t.Error("second edit not open")
	}

	// The add form also displaces an open edit.
	list.StartAdd()
	if list.RowState("2") != RowViewing {
		t.Error("edit still open after StartAdd")
	}
	if !list.Editing() {
		t.Error("add form not open")
	}
}

func TestTaskListCursorClamped(t *testing.T) {
	list := NewTaskList()
	list.SetTasks(sampleTasks())
	list.cursor = 3

	list.SetFilter(FilterActive) // two visible tasks
	if sel := list.Selected(); sel == nil {
		t.Fatal("Selected() = nil after filter shrank the view")
	} else if sel.ID != "2" {
		t.Errorf("Selected().ID = %q, want cursor clamped to last visible", sel.ID)
	}

	list.SetTasks(nil)
	if list.Selected() != nil {
		t.Error("Selected() should be nil for an empty list")
	}
}
