package onboarding

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	artistDomain "github.com/TuaBBL/beatbookingslive/internal/modules/artist/domain"
	authDomain "github.com/TuaBBL/beatbookingslive/internal/modules/auth/domain"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/application"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/infrastructure/cache"
	onboarding_http "github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/interfaces/http"
	profileDomain "github.com/TuaBBL/beatbookingslive/internal/modules/profile/domain"
	subDomain "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/domain"
)

// Module represents the Onboarding module
type Module struct {
	service *application.GuardService
	handler *onboarding_http.OnboardingHandler
}

// NewModule creates and initializes the Onboarding module
func NewModule(
	redisClient *redis.Client,
	cacheTTL time.Duration,
	users authDomain.UserFinder,
	subs subDomain.SubscriptionFinder,
	cards artistDomain.CardFinder,
	profiles profileDomain.ProfileFinder,
	logger *slog.Logger,
) *Module {
	stateCache := cache.NewRedisStateCache(redisClient, cacheTTL)
	service := application.NewGuardService(users, subs, cards, profiles, stateCache, logger)
	handler := onboarding_http.NewOnboardingHandler(service)

	return &Module{
		service: service,
		handler: handler,
	}
}

// Service returns the guard service
func (m *Module) Service() *application.GuardService {
	return m.service
}

// HTTPHandler returns the HTTP handler for the onboarding module
func (m *Module) HTTPHandler() *onboarding_http.OnboardingHandler {
	return m.handler
}
