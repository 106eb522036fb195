package handler

import (
	"net/http"

	"plantGame/internal/domain"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) error {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, users)
	return nil
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, user)
	return nil
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	var req domain.User
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, user)
	return nil
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	var req domain.User
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := h.service.UpdateUser(r.Context(), id, req); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user updated"})
	return nil
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "user deleted"})
	return nil
}
