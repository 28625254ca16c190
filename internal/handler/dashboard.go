package handler

import (
	"log/slog"
	"net/http"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/model"
)

type DashboardHandler struct {
	svc    *dashboard.Service
	logger *slog.Logger
}

func NewDashboardHandler(svc *dashboard.Service, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	day, err := dateParam(r, h.svc.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	mode := dashboard.ViewMode(r.URL.Query().Get("mode"))

	view, err := h.svc.Dashboard(auth.User(r.Context()), technicianParam(r), day, mode)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to build dashboard")
		return
	}
	writeJSON(w, http.StatusOK, toView(view))
}

type extraShiftRequest struct {
	Date model.Date `json:"date"`
}

// ToggleExtraShift flips the caller's extra-shift flag for a Saturday.
func (h *DashboardHandler) ToggleExtraShift(w http.ResponseWriter, r *http.Request) {
	var req extraShiftRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Date.IsZero() {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}

	on, err := h.svc.ToggleExtraShift(auth.User(r.Context()), req.Date)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to toggle extra shift")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"date": req.Date, "active": on})
}
