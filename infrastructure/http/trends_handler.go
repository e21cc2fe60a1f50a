package http

import (
	"net/http"

	"rail-madad/services"
)

type TrendsHandler struct {
	service services.IComplaintService
}

func NewTrendsHandler(service services.IComplaintService) *TrendsHandler {
	return &TrendsHandler{service: service}
}

// Trends handles GET /api/v1/trends/
func (h *TrendsHandler) Trends(w http.ResponseWriter, _ *http.Request) {
	trends, err := h.service.Trends()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trends)
}

// ExportCSV handles GET /api/v1/trends/export/csv
func (h *TrendsHandler) ExportCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=rail_madad_trends.csv")
	if err := h.service.ExportTrendsCSV(w); err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
	}
}

// UrgencyDistribution handles GET /api/v1/trends/urgency/distribution
func (h *TrendsHandler) UrgencyDistribution(w http.ResponseWriter, _ *http.Request) {
	distribution, err := h.service.UrgencyDistribution()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, distribution)
}

// DepartmentStats handles GET /api/v1/trends/department/stats
func (h *TrendsHandler) DepartmentStats(w http.ResponseWriter, _ *http.Request) {
	stats, err := h.service.DepartmentStats()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
