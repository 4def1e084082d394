package api

import (
	"net/http"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

func (h *Handler) listEquipment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentRead) {
		return
	}
	equipment, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, equipment)
}

func (h *Handler) getEquipment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.service.GetEquipment(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (h *Handler) createEquipment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentWrite) {
		return
	}
	var req domain.Equipment
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.service.CreateEquipment(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (h *Handler) updateEquipment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.Equipment
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	e, err := h.service.UpdateEquipment(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (h *Handler) deleteEquipment(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteEquipment(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}

func (h *Handler) maintenanceDue(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpEquipmentRead) {
		return
	}
	days, err := intQuery(r, "days", int64(h.opts.ExpiryWindowDays))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	due, err := h.reports.MaintenanceDue(r.Context(), int(days))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, due)
}
