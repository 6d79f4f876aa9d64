package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/TuaBBL/beatbookingslive/internal/gateway"
	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	"github.com/TuaBBL/beatbookingslive/internal/modules/artist"
	"github.com/TuaBBL/beatbookingslive/internal/modules/auth"
	"github.com/TuaBBL/beatbookingslive/internal/modules/filestorage"
	"github.com/TuaBBL/beatbookingslive/internal/modules/geo"
	"github.com/TuaBBL/beatbookingslive/internal/modules/notification"
	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding"
	"github.com/TuaBBL/beatbookingslive/internal/modules/profile"
	"github.com/TuaBBL/beatbookingslive/internal/modules/subscription"
	"github.com/TuaBBL/beatbookingslive/internal/shared/infrastructure/config"
	"github.com/TuaBBL/beatbookingslive/internal/shared/infrastructure/database"
	"github.com/TuaBBL/beatbookingslive/pkg/migration"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := migration.AutoMigrate(cfg.Database.URL(), "migrations", logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	fileModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		logger.Error("failed to initialize file storage", "error", err)
		os.Exit(1)
	}

	authModule := auth.NewModule(db, cfg.JWT.Secret, cfg.JWT.Expiry, cfg.Google.ClientID)
	notificationModule := notification.NewModule(db, authModule.UserFinder())
	defer notificationModule.Stop()

	profileModule := profile.NewModule(db, fileModule.Service())
	artistModule := artist.NewModule(db, profileModule.ProfileFinder(), authModule.UserFinder(), fileModule.Service(), notificationModule.Service())
	subscriptionModule := subscription.NewModule(db, cfg.Razorpay, cfg.Subscription, notificationModule.Service())
	onboardingModule := onboarding.NewModule(
		redisClient,
		cfg.Onboarding.CacheTTL,
		authModule.UserFinder(),
		subscriptionModule.SubscriptionFinder(),
		artistModule.CardFinder(),
		profileModule.ProfileFinder(),
		logger,
	)
	geoModule := geo.NewModule()

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		AuthHandler:         authModule.HTTPHandler(),
		AuthMiddleware:      authMiddleware,
		ProfileHandler:      profileModule.HTTPHandler(),
		ArtistHandler:       artistModule.HTTPHandler(),
		SubscriptionHandler: subscriptionModule.HTTPHandler(),
		OnboardingHandler:   onboardingModule.HTTPHandler(),
		GeoHandler:          geoModule.HTTPHandler(),
		NotificationHandler: notificationModule.HTTPHandler(),
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
