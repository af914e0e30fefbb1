package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidylist/tidylist/pkg/todosdk"
)

// Backend is the slice of the API the UI needs. It exists so tests can
// drive the model without a running server.
type Backend interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	ListTasks(ctx context.Context) ([]todosdk.Task, error)
	CreateTask(ctx context.Context, title string) (todosdk.Task, error)
	SetTaskCompleted(ctx context.Context, id string, completed bool) (todosdk.Task, error)
	RenameTask(ctx context.Context, id, title string) (todosdk.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// sdkBackend adapts the todosdk client to the Backend interface, holding
// the current session so the token follows login/register.
type sdkBackend struct {
	client  *todosdk.Client
	session *todosdk.Session
}

// NewBackend wraps a todosdk client. A non-empty token resumes a
// previous session, e.g. one restored from the keyring.
func NewBackend(client *todosdk.Client, token string) Backend {
	b := &sdkBackend{client: client}
	if token != "" {
		b.session = client.NewSessionFromToken(token)
	}
	return b
}

var errNoSession = errors.New("not signed in")

// Register creates the account and then logs in, since registration
// alone returns no token.
func (b *sdkBackend) Register(ctx context.Context, username, password string) (string, error) {
	if err := b.client.Register(ctx, username, password); err != nil {
		return "", err
	}
	return b.Login(ctx, username, password)
}

func (b *sdkBackend) Login(ctx context.Context, username, password string) (string, error) {
	session, err := b.client.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	b.session = session
	return session.Token(), nil
}

func (b *sdkBackend) ListTasks(ctx context.Context) ([]todosdk.Task, error) {
	if b.session == nil {
		return nil, errNoSession
	}
	return b.session.ListTasks(ctx)
}

func (b *sdkBackend) CreateTask(ctx context.Context, title string) (todosdk.Task, error) {
	if b.session == nil {
		return todosdk.Task{}, errNoSession
	}
	return b.session.CreateTask(ctx, title)
}

func (b *sdkBackend) SetTaskCompleted(ctx context.Context, id string, completed bool) (todosdk.Task, error) {
	if b.session == nil {
		return todosdk.Task{}, errNoSession
	}
	return b.session.SetTaskCompleted(ctx, id, completed)
}

func (b *sdkBackend) RenameTask(ctx context.Context, id, title string) (todosdk.Task, error) {
	if b.session == nil {
		return todosdk.Task{}, errNoSession
	}
	return b.session.RenameTask(ctx, id, title)
}

func (b *sdkBackend) DeleteTask(ctx context.Context, id string) error {
	if b.session == nil {
		return errNoSession
	}
	return b.session.DeleteTask(ctx, id)
}

// apiTimeout bounds every request issued from the UI so a dead server
// surfaces as a notification instead of a hang.
const apiTimeout = 10 * time.Second

// Messages produced by backend commands.

type tasksLoadedMsg struct {
	tasks []todosdk.Task
}

type taskSavedMsg struct {
	task todosdk.Task
	note string
}

type taskDeletedMsg struct {
	id string
}

type authDoneMsg struct {
	token string
}

type apiErrorMsg struct {
	err error
}

func (m Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		tasks, err := m.backend.ListTasks(ctx)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		task, err := m.backend.CreateTask(ctx, title)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return taskSavedMsg{task: task, note: "task added"}
	}
}

func (m Model) toggleTask(id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		task, err := m.backend.SetTaskCompleted(ctx, id, completed)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		note := "task reopened"
		if task.Completed {
			note = "task completed"
		}
		return taskSavedMsg{task: task, note: note}
	}
}

func (m Model) renameTask(id, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		task, err := m.backend.RenameTask(ctx, id, title)
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return taskSavedMsg{task: task, note: "task renamed"}
	}
}

func (m Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		if err := m.backend.DeleteTask(ctx, id); err != nil {
			return apiErrorMsg{err: err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m Model) authenticate(register bool, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		var token string
		var err error
		if register {
			token, err = m.backend.Register(ctx, username, password)
		} else {
			token, err = m.backend.Login(ctx, username, password)
		}
		if err != nil {
			return apiErrorMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}
