package api

import (
	"net/http"

	"hemis/m/domain"
	"hemis/m/internal/auth"
)

type userRequest struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	FullName string      `json:"full_name"`
	Email    *string     `json:"email"`
	Role     domain.Role `json:"role"`
}

func (req userRequest) account() domain.Account {
	return domain.Account{
		Username: req.Username,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserRead) {
		return
	}
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, accounts)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserRead) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, err := h.service.GetAccount(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserWrite) {
		return
	}
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.service.CreateAccount(r.Context(), req.account(), req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserWrite) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	a, err := h.service.UpdateAccount(r.Context(), id, req.account(), req.Password)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// deleteUser deactivates; accounts are never removed.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserDelete) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeactivateAccount(r.Context(), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondDeleted(w)
}

func (h *Handler) toggleUserActive(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r, auth.OpUserToggle) {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, err := h.service.ToggleAccountActive(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}
