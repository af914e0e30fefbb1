package service_test

import (
	"context"
	"testing"

	"github.com/tidylist/tidylist/internal/todo/domain"
	"github.com/tidylist/tidylist/internal/todo/service"
	"github.com/tidylist/tidylist/internal/todo/store"
	"github.com/tidylist/tidylist/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTaskService(t *testing.T) (*service.TaskService, store.Store) {
	t.Helper()

	s := newTestStore(t)
	return &service.TaskService{Store: s}, s
}

func createOwner(t *testing.T, s store.Store, username string) string {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: "unused",
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u.ID
}

func TestCreateTrimsAndReturnsTask(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	task, err := svc.Create(ctx, owner, "  buy milk  ")
	require.NoError(t, err)
	require.Equal(t, "buy milk", task.Title)
	require.Equal(t, owner, task.OwnerID)
	require.False(t, task.Completed)
	require.NotEmpty(t, task.ID)
	require.False(t, task.CreatedAt.IsZero())
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, owner, title)
		require.ErrorIs(t, err, service.ErrEmptyTitle)
	}

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListIsScopedToOwner(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	alice := createOwner(t, s, "alice")
	bob := createOwner(t, s, "bob")

	_, err := svc.Create(ctx, alice, "alice task")
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, "bob task")
	require.NoError(t, err)

	aliceTasks, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	require.Equal(t, "alice task", aliceTasks[0].Title)

	bobTasks, err := svc.List(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	require.Equal(t, "bob task", bobTasks[0].Title)
}

func TestToggleRoundtrip(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	task, err := svc.Create(ctx, owner, "flip me")
	require.NoError(t, err)

	updated, err := svc.SetCompleted(ctx, owner, task.ID, true)
	require.NoError(t, err)
	require.True(t, updated.Completed)

	updated, err = svc.SetCompleted(ctx, owner, task.ID, false)
	require.NoError(t, err)
	require.False(t, updated.Completed)
	require.Equal(t, task.Title, updated.Title)
}

func TestRenameUpdatesTitle(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	task, err := svc.Create(ctx, owner, "old title")
	require.NoError(t, err)

	updated, err := svc.Rename(ctx, owner, task.ID, "  new title  ")
	require.NoError(t, err)
	require.Equal(t, "new title", updated.Title)
	require.Equal(t, task.Completed, updated.Completed)
}

func TestRenameRejectsEmptyTitle(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	task, err := svc.Create(ctx, owner, "keep me")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, owner, task.ID, "   ")
	require.ErrorIs(t, err, service.ErrEmptyTitle)

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, "keep me", list[0].Title)
}

func TestMutationsRejectForeignTasks(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	alice := createOwner(t, s, "alice")
	bob := createOwner(t, s, "bob")

	task, err := svc.Create(ctx, alice, "private")
	require.NoError(t, err)

	_, err = svc.SetCompleted(ctx, bob, task.ID, true)
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	_, err = svc.Rename(ctx, bob, task.ID, "stolen")
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	err = svc.Delete(ctx, bob, task.ID)
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	// Alice's task survives all of it.
	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "private", list[0].Title)
	require.False(t, list[0].Completed)
}

func TestDeleteRemovesTask(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")

	task, err := svc.Create(ctx, owner, "ephemeral")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, owner, task.ID))

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)

	err = svc.Delete(ctx, owner, task.ID)
	require.ErrorIs(t, err, service.ErrTaskNotFound)
}

func TestMutationsRejectUnknownIDs(t *testing.T) {
	t.Parallel()
	svc, s := newTaskService(t)
	ctx := context.Background()
	owner := createOwner(t, s, "alice")
	ghost := idx.New().String()

	_, err := svc.SetCompleted(ctx, owner, ghost, true)
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	_, err = svc.Rename(ctx, owner, ghost, "anything")
	require.ErrorIs(t, err, service.ErrTaskNotFound)

	err = svc.Delete(ctx, owner, ghost)
	require.ErrorIs(t, err, service.ErrTaskNotFound)
}
