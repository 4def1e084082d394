package api

import (
	"net/http"
	"strings"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpOrderRead) {
		return
	}
	status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status"))))
	orders, err := h.service.ListOrders(r.Context(), status)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpOrderRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpOrderWrite) {
		return
	}
	var req domain.PurchaseOrder
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderedByID == nil {
		uid := claimsFrom(r.Context()).AccountID
		req.OrderedByID = &uid
	}
	o, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpOrderWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req domain.PurchaseOrder
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	o, err := h.service.UpdateOrder(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, o)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpOrderDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}
