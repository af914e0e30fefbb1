package todosdk

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when the server rejects the credentials or
// the bearer token. Callers should treat it as "log in again".
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the requested task does not exist for the
// authenticated user.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when registering a username that is taken.
var ErrConflict = errors.New("conflict")

// APIError carries the HTTP status and the server's error message for
// responses that don't map to one of the sentinel errors above.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Is lets APIError values match the sentinel errors with errors.Is.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401
	case ErrNotFound:
		return e.Status == 404
	case ErrConflict:
		return e.Status == 409
	}
	return false
}
