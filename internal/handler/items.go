package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"plantGame/internal/domain"
	"plantGame/internal/handler/mw"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) error {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, items)
	return nil
}

func (h *Handler) listOwnedItems(w http.ResponseWriter, r *http.Request) error {
	id := pathID(r)
	owned, err := h.service.ListOwnedItems(r.Context(), id)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, owned)
	return nil
}

type purchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// buyItems answers every failure with 400; callers tell causes apart by
// the error text only.
func (h *Handler) buyItems(w http.ResponseWriter, r *http.Request) {
	var req domain.Purchase
	err := decodeBody(r, &req)
	if err == nil {
		err = h.service.BuyItems(r.Context(), req)
	}
	if err != nil {
		mw.GetLogger(r.Context(), h.log).WithFields(logrus.Fields{
			"user_id":    req.UserID,
			"total_cost": req.TotalCost.String(),
		}).WithError(err).Warn("purchase failed")
		writeJSON(w, http.StatusBadRequest, purchaseResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, purchaseResponse{Success: true, Message: "purchase completed"})
}
