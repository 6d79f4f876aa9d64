package notification

import (
	"github.com/jmoiron/sqlx"

	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/infrastructure/persistence/postgres"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification/infrastructure/websocket"
	notification_http "github.com/TuaBBL/beatbookingslive/internal/modules/notification/interfaces/http"
)

// Module represents the Notification module
type Module struct {
	service *application.NotificationService
	handler *notification_http.NotificationHandler
	hub     *websocket.Hub
}

// NewModule creates and initializes the Notification module. The hub
// goroutine runs until Stop.
func NewModule(db *sqlx.DB, users authDomain.UserFinder) *Module {
	repo := postgres.NewPgNotificationRepository(db)
	hub := websocket.NewHub()
	go hub.Run()

	service := application.NewNotificationService(repo, hub)
	handler := notification_http.NewNotificationHandler(service, hub, users)

	return &Module{
		service: service,
		handler: handler,
		hub:     hub,
	}
}

// Service returns the notification service
func (m *Module) Service() *application.NotificationService {
	return m.service
}

// HTTPHandler returns the HTTP handler for the notification module
func (m *Module) HTTPHandler() *notification_http.NotificationHandler {
	return m.handler
}

// Stop shuts down the websocket hub
func (m *Module) Stop() {
	m.hub.Stop()
}
