package todosdk

// Task is the wire representation of a task as returned by the API.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Owner     string `json:"owner,omitempty"`
}

// CredentialsRequest is the body for both register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateTaskRequest is the body for creating a task.
type CreateTaskRequest struct {
	Title string `json:"title"`
}

// SetCompletedRequest is the body for toggling a task's completion flag.
type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

// RenameTaskRequest is the body for renaming a task.
type RenameTaskRequest struct {
	Title string `json:"title"`
}

// MessageResponse is the body returned by delete.
type MessageResponse struct {
	Message string `json:"message"`
}
