package handler

import (
	"net/http"

	"plantGame/internal/domain"
)

func (h *Handler) listPlants(w http.ResponseWriter, r *http.Request) error {
	plants, err := h.service.ListPlants(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, plants)
	return nil
}

func (h *Handler) getPlant(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	plant, err := h.service.GetPlant(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, plant)
	return nil
}

func (h *Handler) createPlant(w http.ResponseWriter, r *http.Request) error {
	var req domain.Plant
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	plant, err := h.service.CreatePlant(r.Context(), req)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusCreated, plant)
	return nil
}

func (h *Handler) updatePlant(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	var req domain.Plant
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if err := h.service.UpdatePlant(r.Context(), id, req); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "plant updated"})
	return nil
}

func (h *Handler) deletePlant(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	if err := h.service.DeletePlant(r.Context(), id); err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "plant deleted"})
	return nil
}
