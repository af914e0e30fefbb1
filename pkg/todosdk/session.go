package todosdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated handle on the API. Sessions are cheap;
// one per token.
type Session struct {
	client *Client
	token  string
}

// Token returns the bearer token backing this session, for callers that
// persist it (e.g. in the system keyring).
func (s *Session) Token() string {
	return s.token
}

// ListTasks returns all of the user's tasks, oldest first.
func (s *Session) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := s.client.do(ctx, http.MethodGet, "/api/tasks", s.token, nil, &tasks)
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask adds a new incomplete task and returns it.
func (s *Session) CreateTask(ctx context.Context, title string) (Task, error) {
	var task Task
	err := s.client.do(ctx, http.MethodPost, "/api/tasks", s.token,
		CreateTaskRequest{Title: title}, &task)
	return task, err
}

// SetTaskCompleted sets the completion flag and returns the updated task.
func (s *Session) SetTaskCompleted(ctx context.Context, id string, completed bool) (Task, error) {
	var task Task
	err := s.client.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), s.token,
		SetCompletedRequest{Completed: completed}, &task)
	return task, err
}

// RenameTask changes the title and returns the updated task.
func (s *Session) RenameTask(ctx context.Context, id, title string) (Task, error) {
	var task Task
	err := s.client.do(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id)+"/edit", s.token,
		RenameTaskRequest{Title: title}, &task)
	return task, err
}

// DeleteTask removes the task.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), s.token, nil, nil)
}
