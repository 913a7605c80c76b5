package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/config"
	"github.com/taskmaster-app/taskmaster-tui/internal/session"
	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

// View represents the current view/screen.
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewDashboard
	ViewTasks
)

// Protected reports whether the view requires an authenticated session.
func (v View) Protected() bool {
	return v == ViewDashboard || v == ViewTasks
}

// Gate is the route guard state. While the session store has not yet
// resolved whether a persisted token is valid, no protected content is
// rendered and no redirect is taken.
type Gate int

const (
	GateChecking Gate = iota
	GateDecided
)

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client  *api.Client
	session *session.Store
	config  *config.Config
	log     *logrus.Entry

	// Route state
	gate        Gate
	currentView View

	// UI state
	width     int
	height    int
	loading   bool
	statusMsg string
	errText   string

	// Components
	spinner spinner.Model
	keymap  Keymap

	// Views
	auth  *AuthForm
	tasks *TaskList

	// Dashboard state
	stats       Stats
	statsLoaded bool

	// One-shot due notification
	notifiedDue bool
}

// NewApp creates a new App instance.
func NewApp(client *api.Client, sess *session.Store, cfg *config.Config, log *logrus.Entry) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &App{
		client:      client,
		session:     sess,
		config:      cfg,
		log:         log.WithField("component", "tui"),
		gate:        GateChecking,
		currentView: ViewLogin,
		loading:     true,
		spinner:     s,
		keymap:      DefaultKeymap(),
		auth:        NewAuthForm(ViewLogin),
		tasks:       NewTaskList(),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		a.checkSession(),
	)
}

// checkSession resolves the persisted token, if any, against the server.
// The gate stays closed until this returns.
func (a *App) checkSession() tea.Cmd {
	return func() tea.Msg {
		return sessionCheckedMsg{authenticated: a.session.Restore()}
	}
}

// navigate moves to the target view, passing it through the route guard,
// and returns the command needed to populate the destination.
func (a *App) navigate(target View) tea.Cmd {
	dest := a.guard(target)
	if dest != target {
		a.log.WithFields(logrus.Fields{"target": target, "dest": dest}).Debug("redirected")
	}

	a.currentView = dest
	a.errText = ""

	switch dest {
	case ViewLogin, ViewRegister:
		a.auth = NewAuthForm(dest)
		return nil
	case ViewDashboard, ViewTasks:
		a.loading = true
		return a.loadTasks()
	}
	return nil
}

// guard applies the route rules: unauthenticated users cannot reach
// protected views, authenticated users are kept off the auth screens.
func (a *App) guard(target View) View {
	if !a.session.Authenticated() && target.Protected() {
		return ViewLogin
	}
	if a.session.Authenticated() && !target.Protected() {
		return ViewDashboard
	}
	return target
}

// Command constructors. Every API call runs inside a tea.Cmd so the UI
// loop is never blocked; each converts failure into a message the call
// site displays locally.

func (a *App) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginDoneMsg{err: a.session.Login(email, password)}
	}
}

func (a *App) register(email, password string) tea.Cmd {
	return func() tea.Msg {
		return registerDoneMsg{err: a.session.Register(email, password)}
	}
}

func (a *App) loadTasks() tea.Cmd {
	return func() tea.Msg {
		tasks, err := a.client.GetTasks()
		if err != nil {
			return errMsg{err: err, fallback: "Failed to load tasks"}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (a *App) createTask(req api.CreateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.client.CreateTask(req); err != nil {
			return errMsg{err: err, fallback: "Failed to add task"}
		}
		return taskMutatedMsg{action: taskCreated}
	}
}

func (a *App) updateTask(id string, req api.UpdateTaskRequest) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.client.UpdateTask(id, req); err != nil {
			return errMsg{err: err, fallback: "Failed to update task"}
		}
		return taskMutatedMsg{action: taskUpdated}
	}
}

func (a *App) toggleTask(task api.Task) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.client.ToggleTask(task); err != nil {
			return errMsg{err: err, fallback: "Failed to update task"}
		}
		return taskMutatedMsg{action: taskToggled}
	}
}

func (a *App) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.client.DeleteTask(id); err != nil {
			return errMsg{err: err, fallback: "Failed to delete task"}
		}
		return taskMutatedMsg{action: taskDeleted}
	}
}

// Message types
type errMsg struct {
	err      error
	fallback string
}
type statusMsg struct{ msg string }
type sessionCheckedMsg struct{ authenticated bool }
type loginDoneMsg struct{ err error }
type registerDoneMsg struct{ err error }
type tasksLoadedMsg struct{ tasks []api.Task }

// taskMutatedMsg reports a completed mutation. The list is re-fetched
// rather than patched locally; simpler and consistent at this scale.
type taskMutatedMsg struct{ action mutation }

type mutation int

const (
	taskCreated mutation = iota
	taskUpdated
	taskToggled
	taskDeleted
)

func (m mutation) status() string {
	switch m {
	case taskCreated:
		return "Task added"
	case taskUpdated:
		return "Task updated"
	case taskDeleted:
		return "Task deleted"
	default:
		return ""
	}
}
