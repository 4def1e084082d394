package api

import (
	"net/http"

	"hemis/m/internal/auth"
)

func (h *Handler) dashboardStats(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpDashboardRead) {
		return
	}
	stats, err := h.reports.Dashboard(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
