package api

import (
	"net/http"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineRead) {
		return
	}
	medicines, err := h.service.ListMedicines(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.service.GetMedicine(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineWrite) {
		return
	}
	var req domain.Medicine
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.service.CreateMedicine(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.Medicine
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	m, err := h.service.UpdateMedicine(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, m)
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteMedicine(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}

func (h *Handler) lowStockMedicines(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineRead) {
		return
	}
	threshold, err := intQuery(r, "threshold", h.opts.LowStockThreshold)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	medicines, err := h.reports.LowStock(r.Context(), threshold)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

func (h *Handler) expiringMedicines(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineRead) {
		return
	}
	days, err := intQuery(r, "days", int64(h.opts.ExpiryWindowDays))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	medicines, err := h.reports.ExpiringSoon(r.Context(), int(days))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

// expiredMedicines accepts an optional asOf=YYYY-MM-DD; the default is today.
func (h *Handler) expiredMedicines(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMedicineRead) {
		return
	}
	var asOf domain.Date
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		asOf = d
	}
	medicines, err := h.reports.Expired(r.Context(), asOf)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}
