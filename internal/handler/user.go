package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/model"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	svc    *dashboard.Service
	logger *slog.Logger
}

func NewUserHandler(svc *dashboard.Service, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		users []model.User
		err   error
	)
	if r.URL.Query().Get("role") == string(model.RoleTechnician) {
		users, err = h.svc.Technicians()
	} else {
		users, err = h.svc.ListUsers()
	}
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dashboard.UserInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	u, err := h.svc.CreateUser(in)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to create user")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in dashboard.UserInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	u, err := h.svc.UpdateUser(r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateUser(auth.User(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, h.logger, err, "failed to deactivate user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
