package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/infrastructure/websocket"
	"github.com/TuaBBL/beatbookingslive/internal/shared/utils"
)

type NotificationHandler struct {
	service *application.NotificationService
	hub     *websocket.Hub
	users   authDomain.UserFinder
}

func NewNotificationHandler(service *application.NotificationService, hub *websocket.Hub, users authDomain.UserFinder) *NotificationHandler {
	return &NotificationHandler{service: service, hub: hub, users: users}
}

// Subscribe handles GET /ws. A websocket connection is long-lived, so the
// account row is checked once more before the upgrade; a token can outlive
// its account.
func (h *NotificationHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	exists, err := h.users.Exists(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to verify account", err)
		return
	}
	if !exists {
		utils.WriteError(w, http.StatusUnauthorized, "account no longer exists", nil)
		return
	}

	websocket.ServeWs(h.hub, w, r, userID)
}

// List handles GET /notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	limit := 20
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	notifications, err := h.service.GetUserNotifications(r.Context(), userID, limit, offset)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to fetch notifications", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"data": notifications})
}

// MarkAsRead handles PATCH /notifications/{id}/read
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid notification id", nil)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			utils.WriteError(w, http.StatusNotFound, "notification not found", nil)
			return
		}
		utils.WriteError(w, http.StatusInternalServerError, "failed to mark notification as read", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllAsRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	if err := h.service.MarkAllAsRead(r.Context(), userID); err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to mark all notifications as read", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(middleware.ContextKeyUserId).(uuid.UUID)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "failed to get unread count", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]int{"count": count})
}
