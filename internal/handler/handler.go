package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps dashboard sentinels to HTTP statuses. Anything
// unrecognised is logged and reported as a 500 with a generic message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, dashboard.ErrValidation),
		errors.Is(err, dashboard.ErrOutcomeRequired),
		errors.Is(err, dashboard.ErrNotSaturday):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, dashboard.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, dashboard.ErrForbidden),
		errors.Is(err, dashboard.ErrNotTechnician):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, dashboard.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, dashboard.ErrImmutableField),
		errors.Is(err, dashboard.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error(fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// monthParam reads ?month=YYYY-MM, defaulting to the month of today.
func monthParam(r *http.Request, today model.Date) (model.Month, error) {
	s := r.URL.Query().Get("month")
	if s == "" {
		return model.MonthOf(today), nil
	}
	return model.ParseMonth(s)
}

// dateParam reads ?date=YYYY-MM-DD, defaulting to today.
func dateParam(r *http.Request, today model.Date) (model.Date, error) {
	s := r.URL.Query().Get("date")
	if s == "" {
		return today, nil
	}
	return model.ParseDate(s)
}

// technicianParam reads ?technician=, treating an absent value as ALL.
func technicianParam(r *http.Request) string {
	if s := r.URL.Query().Get("technician"); s != "" {
		return s
	}
	return compliance.AllTechnicians
}
