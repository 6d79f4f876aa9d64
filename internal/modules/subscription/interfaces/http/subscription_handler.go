package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type SubscriptionHandler struct {
	service *application.SubscriptionService
}

func NewSubscriptionHandler(service *application.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Status handles GET /subscription/status
func (h *SubscriptionHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	resp, err := h.service.Status(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to load subscription", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// Checkout handles POST /subscription/checkout
func (h *SubscriptionHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	resp, err := h.service.Checkout(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadySubscribed) {
			utils.WriteError(w, http.StatusConflict, err.Error(), nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to start checkout", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// Verify handles POST /subscription/verify
func (h *SubscriptionHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	var req application.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	resp, err := h.service.Verify(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			utils.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domain.ErrNoPendingCheckout), errors.Is(err, domain.ErrOrderMismatch):
			utils.WriteError(w, http.StatusConflict, err.Error(), nil)
		default:
			utils.WriteError(w, http.StatusInternalServerError, "failed to verify payment", err)
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
