package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dukerupert/techarena/internal/auth"
	"github.com/dukerupert/techarena/internal/compliance"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/export"
)

// ReportHandler serves the monthly compliance report, its exports and the
// bonus ranking.
type ReportHandler struct {
	svc    *dashboard.Service
	logger *slog.Logger
}

func NewReportHandler(svc *dashboard.Service, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, logger: logger}
}

func (h *ReportHandler) load(w http.ResponseWriter, r *http.Request) (compliance.Report, bool) {
	month, err := monthParam(r, h.svc.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month")
		return compliance.Report{}, false
	}
	report, err := h.svc.Compliance(month, technicianParam(r))
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to build compliance report")
		return compliance.Report{}, false
	}
	return report, true
}

func (h *ReportHandler) Compliance(w http.ResponseWriter, r *http.Request) {
	report, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toReport(report))
}

func (h *ReportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "csv", "text/csv; charset=utf-8", export.WriteCSV)
}

func (h *ReportHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", export.WriteXLSX)
}

// export renders into a buffer first so a failure can still send an error status.
func (h *ReportHandler) export(w http.ResponseWriter, r *http.Request, ext, contentType string, write func(io.Writer, compliance.Report) error) {
	report, ok := h.load(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, report); err != nil {
		h.logger.Error("export compliance report", "format", ext, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export report")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(report.Month, ext)))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *ReportHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	month, err := monthParam(r, h.svc.Today())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}
	entries, err := h.svc.Ranking(auth.User(r.Context()), month)
	if err != nil {
		writeServiceError(w, h.logger, err, "failed to build ranking")
		return
	}
	writeJSON(w, http.StatusOK, toRanking(entries))
}
