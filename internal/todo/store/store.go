package store

import (
	"context"
	"errors"

	"github.com/tidylist/tidylist/internal/todo/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back, otherwise
	// it is committed. This is the recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login. Usernames are case-sensitive.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists if the username is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

type Tasks interface {
	// ListTasksByOwner returns every task owned by ownerID in store-default
	// (insertion) order.
	ListTasksByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)

	// GetTask returns a task by id scoped to its owner. A task owned by a
	// different user is ErrNotFound, never a permission error.
	GetTask(ctx context.Context, id, ownerID string) (domain.Task, error)

	// CreateTask inserts a new task (id is provided by the app via ULID).
	CreateTask(ctx context.Context, t domain.Task) error

	// SetTaskCompleted updates the completed flag and bumps updated_at.
	// Returns ErrNotFound when the id is absent or owned by someone else.
	SetTaskCompleted(ctx context.Context, id, ownerID string, completed bool) error

	// RenameTask updates the title and bumps updated_at, same scoping.
	RenameTask(ctx context.Context, id, ownerID, title string) error

	// DeleteTask removes a task, same scoping. No soft-delete.
	DeleteTask(ctx context.Context, id, ownerID string) error
}
