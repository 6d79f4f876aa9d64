package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/infrastructure/websocket"
)

type NotificationService struct {
	repo domain.NotificationRepository
	hub  *websocket.Hub
}

func NewNotificationService(repo domain.NotificationRepository, hub *websocket.Hub) *NotificationService {
	return &NotificationService{repo: repo, hub: hub}
}

// Create persists the notification and pushes it to the user's open
// sockets. The push is best-effort; a user with no connection just sees
// the notification on the next list fetch.
func (s *NotificationService) Create(ctx context.Context, userID uuid.UUID, title, message, eventType string, notifType domain.NotificationType) error {
	notification := &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		EventType: eventType,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	if payload, err := json.Marshal(notification); err == nil {
		s.hub.SendToUser(userID, payload)
	}
	return nil
}

// Notify is the compact form used by other modules for onboarding events.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, eventType, message string) error {
	return s.Create(ctx, userID, eventTitle(eventType), message, eventType, domain.NotificationTypeSuccess)
}

func eventTitle(eventType string) string {
	switch eventType {
	case domain.TypeSubscriptionActivated:
		return "Subscription activated"
	case domain.TypeArtistCardCreated:
		return "Artist profile created"
	case domain.TypeArtistCardUpdated:
		return "Artist profile updated"
	default:
		return "Update"
	}
}

func (s *NotificationService) GetHub() *websocket.Hub {
	return s.hub
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Notification, error) {
	return s.repo.GetByUserID(ctx, userID, limit, offset)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}
