package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// While the persisted token is being checked no route decision
		// has been taken; swallow input rather than act on a view the
		// guard may be about to change.
		if a.gate == GateChecking {
			return a, nil
		}
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case sessionCheckedMsg:
		a.gate = GateDecided
		a.loading = false
		if msg.authenticated {
			return a, a.navigate(ViewDashboard)
		}
		a.currentView = ViewLogin
		a.auth = NewAuthForm(ViewLogin)
		return a, nil

	case errMsg:
		return a.handleErr(msg)

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil

	case tasksLoadedMsg:
		a.loading = false
		a.errText = ""
		a.tasks.SetTasks(msg.tasks)
		a.stats = ComputeStats(msg.tasks)
		a.statsLoaded = true
		if a.config.UI.NotifyDue && !a.notifiedDue {
			a.notifiedDue = true
			return a, notifyDueCmd(msg.tasks)
		}
		return a, nil

	case loginDoneMsg:
		a.auth.Submitting = false
		if msg.err != nil {
			a.auth.ErrText = api.UserMessage(msg.err, "Could not sign in")
			return a, nil
		}
		a.statusMsg = ""
		return a, a.navigate(ViewDashboard)

	case registerDoneMsg:
		a.auth.Submitting = false
		if msg.err != nil {
			a.auth.ErrText = api.UserMessage(msg.err, "Could not create the account")
			return a, nil
		}
		// Registration does not establish a session; drop back to the
		// login form.
		a.currentView = ViewLogin
		a.auth = NewAuthForm(ViewLogin)
		a.statusMsg = "Account created. Sign in to continue."
		return a, nil

	case taskMutatedMsg:
		if msg.action == taskCreated || msg.action == taskUpdated {
			a.tasks.StopEdit()
		}
		if s := msg.action.status(); s != "" {
			a.statusMsg = s
		}
		a.errText = ""
		a.loading = true
		// Re-fetch the full list instead of patching locally.
		return a, a.loadTasks()
	}

	return a, nil
}

// handleErr converts a failed API call into local view feedback. A 401
// on a protected view means the token went bad: the only automatic
// corrective action is logging out.
func (a *App) handleErr(msg errMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	if a.tasks.form != nil {
		a.tasks.form.Submitting = false
	}
	a.log.WithError(msg.err).Error(msg.fallback)

	if api.IsAuthError(msg.err) && a.currentView.Protected() {
		a.session.Logout()
		a.currentView = ViewLogin
		a.auth = NewAuthForm(ViewLogin)
		a.auth.ErrText = "Session expired. Please sign in again."
		return a, nil
	}

	a.errText = api.UserMessage(msg.err, msg.fallback)
	return a, nil
}

// handleKeyMsg routes key input to the current view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.currentView {
	case ViewLogin, ViewRegister:
		return a.handleAuthKey(msg)
	case ViewDashboard:
		return a.handleDashboardKey(msg)
	case ViewTasks:
		return a.handleTasksKey(msg)
	}
	return a, nil
}

// handleAuthKey drives the login/register forms.
func (a *App) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if a.currentView == ViewRegister {
			a.currentView = ViewLogin
			a.auth = NewAuthForm(ViewLogin)
		}
		return a, nil

	case "ctrl+r":
		if a.currentView == ViewLogin {
			a.currentView = ViewRegister
			a.auth = NewAuthForm(ViewRegister)
		}
		return a, nil

	case "enter":
		if a.auth.Submitting {
			return a, nil
		}
		if !a.auth.Validate() {
			return a, nil
		}
		a.auth.Submitting = true
		if a.currentView == ViewRegister {
			return a, tea.Batch(a.spinner.Tick, a.register(a.auth.Email(), a.auth.Password()))
		}
		return a, tea.Batch(a.spinner.Tick, a.login(a.auth.Email(), a.auth.Password()))
	}

	var cmd tea.Cmd
	a.auth, cmd = a.auth.Update(msg)
	return a, cmd
}

// handleDashboardKey drives the dashboard view.
func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case a.keymap.Quit.Key:
		return a, tea.Quit
	case a.keymap.GoTasks.Key, "enter":
		return a, a.navigate(ViewTasks)
	case a.keymap.Refresh.Key:
		a.loading = true
		return a, a.loadTasks()
	case a.keymap.Logout.Key:
		return a.logout()
	}
	return a, nil
}

// logout tears the session down and returns to the login view. Safe to
// call regardless of in-flight requests; their responses land on a
// cleared session.
func (a *App) logout() (tea.Model, tea.Cmd) {
	a.session.Logout()
	a.tasks = NewTaskList()
	a.stats = Stats{}
	a.statsLoaded = false
	a.currentView = ViewLogin
	a.auth = NewAuthForm(ViewLogin)
	a.statusMsg = "Signed out"
	a.errText = ""
	return a, nil
}
