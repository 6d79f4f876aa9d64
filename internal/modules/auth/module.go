package auth

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/auth/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/auth/infrastructure/persistence/postgres"
	auth_http "github.com/TuaBBL/beatbookingslive/internal/modules/auth/interfaces/http"
)

// Module represents the Auth module
type Module struct {
	service    *application.AuthService
	repository *postgres.PgUserRepository
	handler    *auth_http.AuthHandler
}

// NewModule creates and initializes the Auth module
func NewModule(db *sqlx.DB, jwtSecret string, jwtExpiry time.Duration, googleClientID string) *Module {
	repository := postgres.NewUserRepository(db)
	service := application.NewAuthService(repository, jwtSecret, jwtExpiry, googleClientID)
	handler := auth_http.NewAuthHandler(service)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}
}

// Service returns the auth service
func (m *Module) Service() *application.AuthService {
	return m.service
}

// UserFinder exposes account lookups to other modules
func (m *Module) UserFinder() domain.UserFinder {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the auth module
func (m *Module) HTTPHandler() *auth_http.AuthHandler {
	return m.handler
}
