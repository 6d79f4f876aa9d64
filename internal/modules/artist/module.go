package artist

import (
	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/artist/infrastructure/persistence/postgres"
	artist_http "github.com/TuaBBL/beatbookingslive/internal/modules/artist/interfaces/http"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	fileApp "github.com/TuaBBL/beatbookingslive/internal/modules/filestorage/application"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
)

// Module represents the Artist module
type Module struct {
	service    *application.ArtistService
	repository *postgres.PgCardRepository
	handler    *artist_http.ArtistHandler
}

// NewModule creates and initializes the Artist module
func NewModule(db *sqlx.DB, profiles profileDomain.ProfileFinder, users authDomain.UserFinder, fileService *fileApp.FileService, notifier application.Notifier) *Module {
	repository := postgres.NewCardRepository(db)
	service := application.NewArtistService(repository, profiles, users, notifier)
	handler := artist_http.NewArtistHandler(service, fileService)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}
}

// Service returns the artist service
func (m *Module) Service() *application.ArtistService {
	return m.service
}

// CardFinder exposes card lookups to other modules
func (m *Module) CardFinder() domain.CardFinder {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the artist module
func (m *Module) HTTPHandler() *artist_http.ArtistHandler {
	return m.handler
}
