package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// AuthSubmitMsg is dispatched when the user submits the auth form.
type AuthSubmitMsg struct {
	Register bool
	Username string
	Password string
}

// AuthCancelMsg is dispatched when the user aborts the auth form.
type AuthCancelMsg struct{}

// authBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type authBindings struct {
	register bool
	username string
	password string
}

// AuthForm is the Bubble Tea model for the sign-in/sign-up dialog.
type AuthForm struct {
	form   *huh.Form
	fb     *authBindings
	theme  Theme
	width  int
	height int
}

// NewAuthForm creates the auth dialog model.
func NewAuthForm(theme Theme, width, height int) AuthForm {
	return AuthForm{
		fb:     &authBindings{},
		theme:  theme,
		width:  width,
		height: height,
	}
}

// Start initializes the form. When register is true the dialog opens in
// sign-up mode; the user can still switch modes inside the form.
func (m *AuthForm) Start(register bool) tea.Cmd {
	m.fb.register = register
	m.fb.username = ""
	m.fb.password = ""
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the auth form.
func (m AuthForm) Update(msg tea.Msg) (AuthForm, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		submit := AuthSubmitMsg{
			Register: m.fb.register,
			Username: strings.TrimSpace(m.fb.username),
			Password: m.fb.password,
		}
		return m, func() tea.Msg { return submit }
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return AuthCancelMsg{} }
	}

	return m, cmd
}

// View renders the auth dialog.
func (m AuthForm) View() string {
	if m.form == nil {
		return ""
	}

	title := m.theme.Header.Render("tidylist / sign in")

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(title + "\n\n" + m.form.View())
}

// SetSize updates the form dimensions.
func (m *AuthForm) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTheme updates the dialog's color scheme.
func (m *AuthForm) SetTheme(theme Theme) {
	m.theme = theme
}

func (m *AuthForm) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Mode").
				Options(
					huh.NewOption("Log in", false),
					huh.NewOption("Create account", true),
				).
				Value(&m.fb.register),
			huh.NewInput().
				Title("Username").
				Placeholder("username").
				Value(&m.fb.username).
				Validate(validateRequired("Username")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.fb.password).
				Validate(validateRequired("Password")),
		),
	).WithWidth(m.formWidth())
}

func (m AuthForm) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 80 {
		w = 80
	}
	return w
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
