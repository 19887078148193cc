package wire

import (
	"fmt"
	"net/http"
	"time"

	"storefront/internal/adaptor"
	"storefront/internal/data/repository"
	"storefront/internal/usecase"
	"storefront/pkg/middleware"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const metricsNamespace = "storefront"

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	hasher, err := utils.NewPasswordHasher(config.Password.Pepper, config.Password.SaltRounds)
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	tokens, err := utils.NewTokenManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	service := usecase.NewService(repo, hasher, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, tokens, config, logger),
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	tokens middleware.TokenVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()
	metrics := middleware.NewMetrics(metricsNamespace)

	// Apply global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(metrics.Instrument)
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.App.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	auth := middleware.Auth(tokens, logger)
	limiter := middleware.NewRateLimiter(config.RateLimit.RequestsPerSecond, config.RateLimit.Burst, logger)

	// Apply routes
	wireUser(r, handler.User, auth, limiter)
	wireProduct(r, handler.Product, auth)
	wireOrder(r, handler.Order, auth)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
