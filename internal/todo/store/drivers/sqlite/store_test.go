package sqlite

import (
	"context"
	"testing"

	"github.com/tidylist/tidylist/internal/todo/domain"
	"github.com/tidylist/tidylist/internal/todo/store"
	"github.com/tidylist/tidylist/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func createTestUser(t *testing.T, s *Store, username string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func TestCreateUserEnforcesUniqueUsername(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	createTestUser(t, s, "alice")

	dup := domain.User{ID: idx.New().String(), Username: "alice", PasswordHash: "x"}
	err := s.Users().CreateUser(ctx, dup)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetUserByUsernameIsCaseSensitive(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "Alice")

	got, err := s.Users().GetUserByUsername(ctx, "Alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.Users().GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestTaskOwnerScoping(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	task := domain.Task{ID: idx.New().String(), OwnerID: alice.ID, Title: "secret"}
	require.NoError(t, s.Tasks().CreateTask(ctx, task))

	// Bob cannot see, mutate, or delete Alice's task.
	_, err := s.Tasks().GetTask(ctx, task.ID, bob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Tasks().SetTaskCompleted(ctx, task.ID, bob.ID, true)
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Tasks().RenameTask(ctx, task.ID, bob.ID, "hijacked")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.Tasks().DeleteTask(ctx, task.ID, bob.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err := s.Tasks().ListTasksByOwner(ctx, bob.ID)
	require.NoError(t, err)
	require.Empty(t, list)

	// Alice still sees it untouched.
	got, err := s.Tasks().GetTask(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "secret", got.Title)
	require.False(t, got.Completed)
}

func TestTaskLifecycle(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")

	task := domain.Task{ID: idx.New().String(), OwnerID: alice.ID, Title: "buy milk"}
	require.NoError(t, s.Tasks().CreateTask(ctx, task))

	require.NoError(t, s.Tasks().SetTaskCompleted(ctx, task.ID, alice.ID, true))
	got, err := s.Tasks().GetTask(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	require.True(t, got.Completed)

	require.NoError(t, s.Tasks().RenameTask(ctx, task.ID, alice.ID, "buy oat milk"))
	got, err = s.Tasks().GetTask(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", got.Title)

	require.NoError(t, s.Tasks().DeleteTask(ctx, task.ID, alice.ID))
	_, err = s.Tasks().GetTask(ctx, task.ID, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Second delete of the same id reports not found.
	err = s.Tasks().DeleteTask(ctx, task.ID, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTasksReturnsInsertionOrder(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, s.Tasks().CreateTask(ctx, domain.Task{
			ID: idx.New().String(), OwnerID: alice.ID, Title: title,
		}))
	}

	list, err := s.Tasks().ListTasksByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, list, len(titles))
	for i, task := range list {
		require.Equal(t, titles[i], task.Title)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")

	boom := context.DeadlineExceeded
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().CreateTask(ctx, domain.Task{
			ID: idx.New().String(), OwnerID: alice.ID, Title: "doomed",
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Tasks().ListTasksByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, list)
}
