package profile

import (
	"github.com/jmoiron/sqlx"

	fileApp "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile/infrastructure/persistence/postgres"
	profile_http "github.com/TuaBBL/beatbookingslive/internal/modules/profile/interfaces/http"
)

// Module represents the Profile module
type Module struct {
	service    *application.ProfileService
	repository *postgres.PgProfileRepository
	handler    *profile_http.ProfileHandler
}

// NewModule creates and initializes the Profile module
func NewModule(db *sqlx.DB, fileService *fileApp.FileService) *Module {
	repository := postgres.NewProfileRepository(db)
	service := application.NewProfileService(repository)
	handler := profile_http.NewProfileHandler(service, fileService)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}
}

// Service returns the profile service
func (m *Module) Service() *application.ProfileService {
	return m.service
}

// ProfileFinder exposes profile reads to other modules
func (m *Module) ProfileFinder() domain.ProfileFinder {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the profile module
func (m *Module) HTTPHandler() *profile_http.ProfileHandler {
	return m.handler
}
