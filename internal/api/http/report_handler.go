package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vehicle-rental-backend/internal/logger"
	"vehicle-rental-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport serves a report as JSON, or as plain text with ?format=text.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	reportType, err := service.ParseReportType(mux.Vars(r)["type"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report type")
		return
	}

	report, err := h.reportSvc.GenerateReport(r.Context(), reportType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.Render(w); err != nil {
			logger.Error("Failed to render report", "type", reportType, "error", err)
		}
		return
	}
	writeSuccess(w, http.StatusOK, "", envelope{
		"type":   reportType,
		"report": MapReportToDTO(report),
	})
}
