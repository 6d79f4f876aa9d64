package subscription

import (
	"github.com/jmoiron/sqlx"

	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription/infrastructure/persistence/postgres"
	sub_http "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/interfaces/http"
	"github.com/TuaBBL/beatbookingslive/internal/shared/infrastructure/config"
)

// Module represents the Subscription module
type Module struct {
	service    *application.SubscriptionService
	repository *postgres.PgSubscriptionRepository
	handler    *sub_http.SubscriptionHandler
}

// NewModule creates and initializes the Subscription module
func NewModule(db *sqlx.DB, cfg config.RazorpayConfig, plan config.SubscriptionConfig, notifier application.Notifier) *Module {
	repository := postgres.NewSubscriptionRepository(db)
	service := application.NewSubscriptionService(repository, cfg.KeyID, cfg.KeySecret, plan.PlanAmount, plan.PlanCurrency, notifier)
	handler := sub_http.NewSubscriptionHandler(service)

	return &Module{
		service:    service,
		repository: repository,
		handler:    handler,
	}
}

// Service returns the subscription service
func (m *Module) Service() *application.SubscriptionService {
	return m.service
}

// SubscriptionFinder exposes subscription lookups to other modules
func (m *Module) SubscriptionFinder() domain.SubscriptionFinder {
	return m.repository
}

// HTTPHandler returns the HTTP handler for the subscription module
func (m *Module) HTTPHandler() *sub_http.SubscriptionHandler {
	return m.handler
}
