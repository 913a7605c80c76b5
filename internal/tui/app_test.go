package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskmaster-app/taskmaster-tui/internal/api"
	"github.com/taskmaster-app/taskmaster-tui/internal/config"
	"github.com/taskmaster-app/taskmaster-tui/internal/session"
)

// nullTokens is a TokenStore with nothing in it.
type nullTokens struct{}

func (nullTokens) Save(string) error     { return nil }
func (nullTokens) Load() (string, error) { return "", nil }
func (nullTokens) Clear() error          { return nil }

func newTestApp() *App {
	client := api.NewClient("http://127.0.0.1:0/api")
	sess := session.New(client, nullTokens{}, nil)
	app := NewApp(client, sess, config.DefaultConfig(), nil)
	app.width = 80
	app.height = 24
	return app
}

func TestGateBlocksUntilSessionChecked(t *testing.T) {
	app := newTestApp()
	app.tasks.SetTasks([]api.Task{{ID: "1", Title: "Secret task"}})

	view := app.View()
	if !strings.Contains(view, "Checking session") {
		t.Error("pre-decision view should show the session check")
	}
	if strings.Contains(view, "Secret task") {
		t.Error("task data rendered before the session check resolved")
	}

	// Input is swallowed too; no key reaches a view yet.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if model.(*App).tasks.Editing() {
		t.Error("key press acted on a view before the gate was decided")
	}
}

func TestGuardRedirects(t *testing.T) {
	app := newTestApp()
	app.gate = GateDecided

	// Unauthenticated: protected views collapse to login.
	if got := app.guard(ViewTasks); got != ViewLogin {
		t.Errorf("guard(ViewTasks) = %v, want ViewLogin", got)
	}
	if got := app.guard(ViewDashboard); got != ViewLogin {
		t.Errorf("guard(ViewDashboard) = %v, want ViewLogin", got)
	}
	if got := app.guard(ViewRegister); got != ViewRegister {
		t.Errorf("guard(ViewRegister) = %v, want ViewRegister", got)
	}
}

func TestSessionCheckedUnauthenticatedShowsLogin(t *testing.T) {
	app := newTestApp()

	model, _ := app.Update(sessionCheckedMsg{authenticated: false})
	app = model.(*App)

	if app.gate != GateDecided {
		t.Error("gate still checking after sessionCheckedMsg")
	}
	if app.currentView != ViewLogin {
		t.Errorf("currentView = %v, want ViewLogin", app.currentView)
	}
	if !strings.Contains(app.View(), "Sign In") {
		t.Error("login form not rendered")
	}
}

func TestNavigateUnauthenticatedNeverLoadsTasks(t *testing.T) {
	app := newTestApp()
	app.gate = GateDecided

	cmd := app.navigate(ViewTasks)
	if app.currentView != ViewLogin {
		t.Errorf("currentView = %v, want ViewLogin", app.currentView)
	}
	if cmd != nil {
		t.Error("navigate issued a load command for a redirected view")
	}
}
