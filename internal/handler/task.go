package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/model"
)

type TaskHandler struct {
	svc    *dashboard.Service
	logger *slog.Logger
}

func NewTaskHandler(svc *dashboard.Service, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger}
}

// List returns the month's tasks visible to the caller.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r, h.svc.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}
	tasks, err := h.svc.ListTasks(auth.User(r.Context()), technicianParam(r), month)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list tasks")
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.svc.GetTask(auth.User(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to get task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.TaskInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	in.ID = ""

	task, err := h.svc.SaveTask(auth.User(r.Context()), in)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create task")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in dashboard.TaskInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	in.ID = r.PathValue("id")

	task, err := h.svc.SaveTask(auth.User(r.Context()), in)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to update task")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteTask(auth.User(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err, "failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
