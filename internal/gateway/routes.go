package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TuaBBL/beatbookingslive/internal/gateway/middleware"
	artist_http "github.com/TuaBBL/beatbookingslive/internal/modules/artist/interfaces/http"
	auth_http "github.com/TuaBBL/beatbookingslive/internal/modules/auth/interfaces/http"
	geo_http "github.com/TuaBBL/beatbookingslive/internal/modules/geo/interfaces/http"
	notification_http "github.com/TuaBBL/beatbookingslive/internal/modules/notification/interfaces/http"
	onboarding_http "github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/interfaces/http"
	profile_http "github.com/TuaBBL/beatbookingslive/internal/modules/profile/interfaces/http"
	subscription_http "github.com/TuaBBL/beatbookingslive/internal/modules/subscription/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	AuthHandler         *auth_http.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleWare
	ProfileHandler      *profile_http.ProfileHandler
	ArtistHandler       *artist_http.ArtistHandler
	SubscriptionHandler *subscription_http.SubscriptionHandler
	OnboardingHandler   *onboarding_http.OnboardingHandler
	GeoHandler          *geo_http.GeoHandler
	NotificationHandler *notification_http.NotificationHandler
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Auth Routes
	mux.HandleFunc("POST /register", config.AuthHandler.Register)
	mux.HandleFunc("POST /login", config.AuthHandler.Login)
	mux.HandleFunc("POST /login/google", config.AuthHandler.GoogleLogin)
	mux.Handle("GET /me", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.AuthHandler.Me)))

	// Profile Routes
	mux.Handle("GET /profile", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.Get)))
	mux.Handle("PUT /profile", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.Update)))
	mux.Handle("POST /profile/avatar", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ProfileHandler.UploadAvatar)))

	// Artist Card Routes
	mux.Handle("GET /artist/card", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ArtistHandler.GetDraft)))
	mux.Handle("PUT /artist/card", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ArtistHandler.Submit)))
	mux.Handle("POST /artist/card/image", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ArtistHandler.UploadImage)))
	mux.Handle("POST /artist/card/gallery", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ArtistHandler.UploadGalleryImage)))
	mux.Handle("POST /artist/card/video", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.ArtistHandler.UploadVideo)))

	// Subscription Routes
	mux.Handle("GET /subscription/status", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.SubscriptionHandler.Status)))
	mux.Handle("POST /subscription/checkout", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.SubscriptionHandler.Checkout)))
	mux.Handle("POST /subscription/verify", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.SubscriptionHandler.Verify)))

	// Onboarding Guard Routes
	mux.Handle("GET /onboarding/status", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.OnboardingHandler.Status)))
	mux.Handle("POST /onboarding/refresh", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.OnboardingHandler.Refresh)))

	// Geo Routes
	mux.Handle("GET /geo/cities", config.AuthMiddleware.FlexibleAuth(http.HandlerFunc(config.GeoHandler.Cities)))
	mux.Handle("GET /geo/states", config.AuthMiddleware.FlexibleAuth(http.HandlerFunc(config.GeoHandler.States)))

	// Notification Routes
	mux.Handle("GET /notifications", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.List)))
	mux.Handle("PATCH /notifications/{id}/read", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.MarkAsRead)))
	mux.Handle("PATCH /notifications/read-all", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.MarkAllAsRead)))
	mux.Handle("GET /notifications/unread-count", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.UnreadCount)))
	mux.Handle("GET /ws", config.AuthMiddleware.RequireAuth(http.HandlerFunc(config.NotificationHandler.Subscribe)))

	return mux
}
