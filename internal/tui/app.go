package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tidylist/tidylist/pkg/todosdk"
)

// inputMode says what the text input at the bottom of the list is for.
type inputMode int

const (
	inputNone inputMode = iota
	inputNew
	inputEdit
)

// notificationTTL is how long a status message stays on screen.
const notificationTTL = 4 * time.Second

type clearNotificationMsg struct {
	seq int
}

// Model is the root Bubble Tea model. It holds the whole client state:
// the task list, the draft input, the edit target, the active theme,
// the session token, and the auth dialog.
type Model struct {
	backend Backend
	keys    *KeyMap
	theme   Theme

	tasks  []todosdk.Task
	cursor int

	input     textinput.Model
	inputMode inputMode
	editingID string

	token    string
	authForm AuthForm
	showAuth bool

	notification    string
	notificationErr bool
	notificationSeq int
	busy            bool

	width  int
	height int

	// PersistToken is called when a token is obtained or cleared, so the
	// caller can store it in the system keyring.
	PersistToken func(token string)

	// PersistTheme is called when the user flips the theme, so the
	// caller can save it to the config file.
	PersistTheme func(name string)
}

// New creates the root model. A non-empty token skips the auth dialog
// and loads tasks immediately; an expired token falls back to the
// dialog on the first API error.
func New(backend Backend, theme Theme, token string) Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 200

	return Model{
		backend:  backend,
		keys:     DefaultKeyMap(),
		theme:    theme,
		input:    input,
		token:    token,
		authForm: NewAuthForm(theme, 80, 24),
		showAuth: token == "",
		width:    80,
		height:   24,
	}
}

// Init loads tasks if a token is present, otherwise opens the auth dialog.
func (m Model) Init() tea.Cmd {
	if m.showAuth {
		return m.authForm.Start(false)
	}
	return m.loadTasks()
}

// Update handles messages and dispatches to the auth dialog or the list.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.authForm.SetSize(msg.Width, msg.Height)
		if m.showAuth {
			var cmd tea.Cmd
			m.authForm, cmd = m.authForm.Update(msg)
			return m, cmd
		}
		return m, nil

	case AuthSubmitMsg:
		m.busy = true
		return m, m.authenticate(msg.Register, msg.Username, msg.Password)

	case AuthCancelMsg:
		// There is nothing to show without a session.
		return m, tea.Quit

	case authDoneMsg:
		m.token = msg.token
		m.showAuth = false
		m.busy = true
		if m.PersistToken != nil {
			m.PersistToken(msg.token)
		}
		return m.notify("signed in", false, m.loadTasks())

	case tasksLoadedMsg:
		m.busy = false
		m.tasks = msg.tasks
		if m.cursor >= len(m.tasks) {
			m.cursor = max(0, len(m.tasks)-1)
		}
		return m, nil

	case taskSavedMsg:
		m.busy = false
		m.upsertTask(msg.task)
		return m.notify(msg.note, false, nil)

	case taskDeletedMsg:
		m.busy = false
		m.removeTask(msg.id)
		return m.notify("task deleted", false, nil)

	case apiErrorMsg:
		m.busy = false
		return m.handleAPIError(msg.err)

	case clearNotificationMsg:
		if msg.seq == m.notificationSeq {
			m.notification = ""
		}
		return m, nil
	}

	if m.showAuth {
		var cmd tea.Cmd
		m.authForm, cmd = m.authForm.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	if m.inputMode != inputNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inputMode != inputNone {
		switch msg.String() {
		case "enter":
			return m.submitInput()
		case "esc":
			m.inputMode = inputNone
			m.editingID = ""
			m.input.Reset()
			m.input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.selectedTask(); ok && !m.busy {
			m.busy = true
			return m, m.toggleTask(task.ID, !task.Completed)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.inputMode = inputNew
		m.input.Reset()
		m.input.Placeholder = "What needs to be done?"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.selectedTask(); ok {
			m.inputMode = inputEdit
			m.editingID = task.ID
			m.input.SetValue(task.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok && !m.busy {
			m.busy = true
			return m, m.deleteTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.busy = true
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Theme):
		if m.theme.Name == "dark" {
			m.theme = LightTheme()
		} else {
			m.theme = DarkTheme()
		}
		m.authForm.SetTheme(m.theme)
		if m.PersistTheme != nil {
			m.PersistTheme(m.theme.Name)
		}
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m.logout()
	}

	return m, nil
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.input.Value())
	if title == "" {
		return m.notify("title must not be empty", true, nil)
	}

	mode, editingID := m.inputMode, m.editingID
	m.inputMode = inputNone
	m.editingID = ""
	m.input.Reset()
	m.input.Blur()
	m.busy = true

	if mode == inputEdit {
		return m, m.renameTask(editingID, title)
	}
	return m, m.createTask(title)
}

func (m Model) handleAPIError(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, todosdk.ErrUnauthorized) || errors.Is(err, errNoSession) {
		m.token = ""
		m.showAuth = true
		if m.PersistToken != nil {
			m.PersistToken("")
		}
		next, cmd := m.notify("session expired, please sign in again", true, m.authForm.Start(false))
		return next, cmd
	}

	var apiErr *todosdk.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return m.notify(apiErr.Message, true, nil)
	}
	return m.notify("server unavailable: "+err.Error(), true, nil)
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.token = ""
	m.tasks = nil
	m.cursor = 0
	m.showAuth = true
	if m.PersistToken != nil {
		m.PersistToken("")
	}
	return m, m.authForm.Start(false)
}

// notify sets the status message and schedules its removal.
func (m Model) notify(text string, isErr bool, extra tea.Cmd) (Model, tea.Cmd) {
	m.notification = text
	m.notificationErr = isErr
	m.notificationSeq++
	seq := m.notificationSeq

	clear := tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
	if extra != nil {
		return m, tea.Batch(extra, clear)
	}
	return m, clear
}

func (m *Model) upsertTask(task todosdk.Task) {
	for i := range m.tasks {
		if m.tasks[i].ID == task.ID {
			m.tasks[i] = task
			return
		}
	}
	m.tasks = append(m.tasks, task)
	m.cursor = len(m.tasks) - 1
}

func (m *Model) removeTask(id string) {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	if m.cursor >= len(m.tasks) {
		m.cursor = max(0, len(m.tasks)-1)
	}
}

func (m Model) selectedTask() (todosdk.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return todosdk.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// View renders either the auth dialog or the task list.
func (m Model) View() string {
	if m.showAuth {
		return m.authForm.View()
	}

	var b strings.Builder

	header := m.theme.Header.Render("tidylist")
	if m.busy {
		header += " " + m.theme.Help.Render("working...")
	}
	b.WriteString(header + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.theme.Help.Render("No tasks yet. Press n to add one.") + "\n")
	}

	for i, task := range m.tasks {
		check := "[ ]"
		if task.Completed {
			check = m.theme.Checkbox.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", check, task.Title)

		switch {
		case i == m.cursor:
			b.WriteString(m.theme.SelectedItem.Render(line))
		case task.Completed:
			b.WriteString(m.theme.DoneItem.Render(line))
		default:
			b.WriteString(m.theme.Item.Render(line))
		}
		b.WriteString("\n")
	}

	if m.inputMode != inputNone {
		label := "new task"
		if m.inputMode == inputEdit {
			label = "edit title"
		}
		b.WriteString("\n" + m.theme.Help.Render(label+":") + " " + m.input.View() + "\n")
	}

	if m.notification != "" {
		style := m.theme.Notification
		if m.notificationErr {
			style = m.theme.ErrorText
		}
		b.WriteString("\n" + style.Render(m.notification) + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render(m.helpLine()))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) helpLine() string {
	parts := make([]string, 0, 8)
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
