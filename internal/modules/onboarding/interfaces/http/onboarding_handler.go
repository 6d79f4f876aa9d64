package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/domain"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type OnboardingHandler struct {
	service *application.GuardService
}

func NewOnboardingHandler(service *application.GuardService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// Status handles GET /onboarding/status?path=
func (h *OnboardingHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.Check)
}

// Refresh handles POST /onboarding/refresh
func (h *OnboardingHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.Refresh)
}

type checkFunc func(ctx context.Context, userID uuid.UUID, path string) (*domain.State, error)

func (h *OnboardingHandler) respond(w http.ResponseWriter, r *http.Request, check checkFunc) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	state, err := check(r.Context(), userID, r.URL.Query().Get("path"))
	if err != nil {
		if errors.Is(err, application.ErrOrphanedIdentity) {
			// The session references an account that no longer exists;
			// the client must sign out and return to the landing page
			utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{
				"error":    err.Error(),
				"sign_out": true,
			})
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to run onboarding check", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, state)
}
