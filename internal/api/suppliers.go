package api

import (
	"net/http"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpSupplierRead) {
		return
	}
	suppliers, err := h.service.ListSuppliers(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) getSupplier(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpSupplierRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, err := h.service.GetSupplier(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpSupplierWrite) {
		return
	}
	var req domain.Supplier
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.service.CreateSupplier(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpSupplierWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.Supplier
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s, err := h.service.UpdateSupplier(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpSupplierDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteSupplier(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}
