package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tidylist/tidylist/internal/todo/domain"
	"github.com/tidylist/tidylist/internal/todo/store"
	"github.com/tidylist/tidylist/pkg/idx"
	"github.com/tidylist/tidylist/pkg/slogx"
)

// ErrEmptyTitle is returned when creating or renaming a task with a title
// that is empty after trimming whitespace.
var ErrEmptyTitle = errors.New("task title must not be empty")

// ErrTaskNotFound is returned when a task does not exist or belongs to a
// different user. The two cases are indistinguishable on purpose so task
// ids cannot be probed across accounts.
var ErrTaskNotFound = errors.New("task not found")

// TaskService implements owner-scoped task management. Every operation
// takes the acting user's id and only ever touches that user's tasks.
type TaskService struct {
	Store store.Store
}

// List returns all tasks owned by the user, oldest first.
func (s *TaskService) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := s.Store.Tasks().ListTasksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create adds a new incomplete task for the user and returns it.
func (s *TaskService) Create(ctx context.Context, ownerID, title string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrEmptyTitle
	}

	task := domain.Task{
		ID:      idx.New().String(),
		OwnerID: ownerID,
		Title:   title,
	}

	var created domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().CreateTask(ctx, task); err != nil {
			return err
		}

		var err error
		created, err = tx.Tasks().GetTask(ctx, task.ID, ownerID)
		return err
	})
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	slogx.FromContext(ctx).InfoContext(ctx, "task created",
		"task_id", created.ID,
		"owner_id", ownerID,
	)

	return created, nil
}

// SetCompleted sets the completion flag of the user's task and returns the
// updated task.
func (s *TaskService) SetCompleted(ctx context.Context, ownerID, taskID string, completed bool) (domain.Task, error) {
	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().SetTaskCompleted(ctx, taskID, ownerID, completed); err != nil {
			return err
		}

		var err error
		updated, err = tx.Tasks().GetTask(ctx, taskID, ownerID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// Rename changes the title of the user's task and returns the updated task.
func (s *TaskService) Rename(ctx context.Context, ownerID, taskID, title string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrEmptyTitle
	}

	var updated domain.Task
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Tasks().RenameTask(ctx, taskID, ownerID, title); err != nil {
			return err
		}

		var err error
		updated, err = tx.Tasks().GetTask(ctx, taskID, ownerID)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Task{}, ErrTaskNotFound
		}
		return domain.Task{}, fmt.Errorf("failed to rename task: %w", err)
	}
	return updated, nil
}

// Delete removes the user's task.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.Store.Tasks().DeleteTask(ctx, taskID, ownerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	slogx.FromContext(ctx).InfoContext(ctx, "task deleted",
		"task_id", taskID,
		"owner_id", ownerID,
	)
	return nil
}
