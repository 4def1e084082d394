package api

import (
	"net/http"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

func (h *Handler) listMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceRead) {
		return
	}
	records, err := h.service.ListMaintenance(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) getMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := h.service.GetMaintenance(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) maintenanceHistory(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceRead) {
		return
	}
	equipmentID, err := idParam(r, "equipmentID")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := h.service.MaintenanceHistory(r.Context(), equipmentID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceWrite) {
		return
	}
	var req domain.MaintenanceRecord
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.service.CreateMaintenance(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) updateMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.MaintenanceRecord
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rec, err := h.service.UpdateMaintenance(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (h *Handler) deleteMaintenance(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpMaintenanceDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteMaintenance(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}
