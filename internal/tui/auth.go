package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskmaster-app/taskmaster-tui/internal/tui/styles"
)

// AuthField is the focused field of the auth form.
type AuthField int

const (
	AuthFieldEmail AuthField = iota
	AuthFieldPassword
	AuthFieldSubmit
)

const authFieldCount = 3

// AuthForm is the controlled login/register form.
type AuthForm struct {
	Mode View // ViewLogin or ViewRegister

	EmailInput    textinput.Model
	PasswordInput textinput.Model

	FocusedField AuthField
	Submitting   bool
	ErrText      string
}

// NewAuthForm creates the form for the given auth view.
func NewAuthForm(mode View) *AuthForm {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.Focus()
	emailInput.CharLimit = 100
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 100
	passwordInput.Width = 40

	return &AuthForm{
		Mode:          mode,
		EmailInput:    emailInput,
		PasswordInput: passwordInput,
		FocusedField:  AuthFieldEmail,
	}
}

// Email returns the trimmed email value.
func (f *AuthForm) Email() string {
	return strings.TrimSpace(f.EmailInput.Value())
}

// Password returns the password value.
func (f *AuthForm) Password() string {
	return f.PasswordInput.Value()
}

// Validate checks the required fields before submission.
func (f *AuthForm) Validate() bool {
	if f.Email() == "" || f.Password() == "" {
		f.ErrText = "Email and password are required"
		return false
	}
	f.ErrText = ""
	return true
}

// Update handles input for the form.
func (f *AuthForm) Update(msg tea.Msg) (*AuthForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.nextField()
			return f, nil
		case "shift+tab", "up":
			f.prevField()
			return f, nil
		}
	}

	var cmds []tea.Cmd
	switch f.FocusedField {
	case AuthFieldEmail:
		var cmd tea.Cmd
		f.EmailInput, cmd = f.EmailInput.Update(msg)
		cmds = append(cmds, cmd)
	case AuthFieldPassword:
		var cmd tea.Cmd
		f.PasswordInput, cmd = f.PasswordInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

func (f *AuthForm) nextField() {
	f.blurCurrent()
	f.FocusedField = (f.FocusedField + 1) % authFieldCount
	f.focusCurrent()
}

func (f *AuthForm) prevField() {
	f.blurCurrent()
	f.FocusedField = (f.FocusedField - 1 + authFieldCount) % authFieldCount
	f.focusCurrent()
}

func (f *AuthForm) blurCurrent() {
	switch f.FocusedField {
	case AuthFieldEmail:
		f.EmailInput.Blur()
	case AuthFieldPassword:
		f.PasswordInput.Blur()
	}
}

func (f *AuthForm) focusCurrent() {
	switch f.FocusedField {
	case AuthFieldEmail:
		f.EmailInput.Focus()
	case AuthFieldPassword:
		f.PasswordInput.Focus()
	}
}

// View renders the form panel.
func (f *AuthForm) View() string {
	var b strings.Builder

	title := "Sign In"
	footer := "Enter: sign in | Ctrl+R: create an account | Ctrl+C: quit"
	if f.Mode == ViewRegister {
		title = "Create Account"
		footer = "Enter: register | Esc: back to sign in | Ctrl+C: quit"
	}

	b.WriteString(styles.DialogTitle.Render(title))
	b.WriteString("\n\n")

	if f.ErrText != "" {
		b.WriteString(styles.ErrorBanner.Render(f.ErrText))
		b.WriteString("\n\n")
	}

	b.WriteString(f.renderField("Email", f.EmailInput.View(), AuthFieldEmail))
	b.WriteString("\n")
	b.WriteString(f.renderField("Password", f.PasswordInput.View(), AuthFieldPassword))
	b.WriteString("\n\n")

	submitStyle := styles.HelpDesc
	if f.FocusedField == AuthFieldSubmit {
		submitStyle = styles.HelpKey
	}
	submitText := "[ Sign In ]"
	if f.Mode == ViewRegister {
		submitText = "[ Register ]"
	}
	if f.Submitting {
		submitText = "[ Please wait... ]"
	}
	b.WriteString(submitStyle.Render(submitText))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render(footer))

	return styles.PanelFocused.Render(b.String())
}

func (f *AuthForm) renderField(label, input string, field AuthField) string {
	labelStyle := styles.InputLabel
	if f.FocusedField == field {
		labelStyle = labelStyle.Foreground(styles.Highlight)
	}
	return fmt.Sprintf("%s\n%s", labelStyle.Render(label), input)
}
