package http

import (
	"errors"
	"net/http"

	"github.com/tidylist/tidylist/internal/todo/domain"
	"github.com/tidylist/tidylist/internal/todo/service"
	"github.com/tidylist/tidylist/pkg/httpx"
	"github.com/tidylist/tidylist/pkg/slogx"
	"github.com/tidylist/tidylist/pkg/todosdk"
)

// TasksHandler implements the owner-scoped task endpoints. The acting
// user always comes from the verified token, never from the request.
type TasksHandler struct {
	TaskService *service.TaskService
}

func (h *TasksHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)

	tasks, err := h.TaskService.List(ctx, ownerID)
	if err != nil {
		log.Error("failed to list tasks", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list tasks")
		return
	}

	out := make([]todosdk.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toWireTask(t))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *TasksHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)

	var req todosdk.CreateTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.TaskService.Create(ctx, ownerID, req.Title)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTitle) {
			httpx.WriteError(w, http.StatusBadRequest, "title must not be empty")
			return
		}
		log.Error("failed to create task", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to create task")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWireTask(task))
}

func (h *TasksHandler) HandleSetCompleted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)
	taskID := r.PathValue("id")

	var req todosdk.SetCompletedRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.TaskService.SetCompleted(ctx, ownerID, taskID, req.Completed)
	if err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "task not found")
			return
		}
		log.Error("failed to update task", "err", err, "task_id", taskID)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to update task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireTask(task))
}

func (h *TasksHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)
	taskID := r.PathValue("id")

	var req todosdk.RenameTaskRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.TaskService.Rename(ctx, ownerID, taskID, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTitle):
			httpx.WriteError(w, http.StatusBadRequest, "title must not be empty")
		case errors.Is(err, service.ErrTaskNotFound):
			httpx.WriteError(w, http.StatusNotFound, "task not found")
		default:
			log.Error("failed to rename task", "err", err, "task_id", taskID)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to rename task")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWireTask(task))
}

func (h *TasksHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	ownerID := httpx.UserIDFromContext(ctx)
	taskID := r.PathValue("id")

	if err := h.TaskService.Delete(ctx, ownerID, taskID); err != nil {
		if errors.Is(err, service.ErrTaskNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "task not found")
			return
		}
		log.Error("failed to delete task", "err", err, "task_id", taskID)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to delete task")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.MessageResponse{Message: "task deleted"})
}

func toWireTask(t domain.Task) todosdk.Task {
	return todosdk.Task{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
		Owner:     t.OwnerID,
	}
}
