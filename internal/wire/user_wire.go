package wire

import (
	"net/http"

	"storefront/internal/adaptor"
	"storefront/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
	limiter *middleware.RateLimiter,
) {
	r.Route("/users", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Post("/", userHandler.Register)
		r.With(limiter.Handler).Post("/authenticate", userHandler.Authenticate)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/", userHandler.GetAll)
			r.Get("/{id}", userHandler.GetByID)
		})
	})
}
