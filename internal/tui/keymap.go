// Package tui provides the terminal user interface for TaskMaster.
package tui

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up     Key
	Down   Key
	Top    Key
	Bottom Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Refresh Key

	// Views
	GoDashboard Key
	GoTasks     Key
	Logout      Key

	// Task actions
	AddTask      Key
	EditTask     Key
	DeleteTask   Key
	CompleteTask Key
	CopyTitle    Key

	// Search/Filter
	Search       Key
	CycleFilter  Key
	FilterAll    Key
	FilterActive Key
	FilterDone   Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Top:    Key{Key: "g", Help: "top"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Refresh: Key{Key: "r", Help: "refresh"},

		GoDashboard: Key{Key: "tab", Help: "dashboard"},
		GoTasks:     Key{Key: "tab", Help: "tasks"},
		Logout:      Key{Key: "L", Help: "sign out"},

		AddTask:      Key{Key: "a", Help: "add task"},
		EditTask:     Key{Key: "e", Help: "edit task"},
		DeleteTask:   Key{Key: "d", Help: "delete"},
		CompleteTask: Key{Key: "x", Help: "complete/uncomplete"},
		CopyTitle:    Key{Key: "y", Help: "copy title"},

		Search:       Key{Key: "/", Help: "search"},
		CycleFilter:  Key{Key: "f", Help: "cycle filter"},
		FilterAll:    Key{Key: "1", Help: "all"},
		FilterActive: Key{Key: "2", Help: "active"},
		FilterDone:   Key{Key: "3", Help: "completed"},
	}
}
