package wire

import (
	"net/http"

	"storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/products", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", productHandler.GetAll)
		r.Get("/top", productHandler.GetTopSellers)
		r.Get("/category/{category}", productHandler.GetByCategory)
		r.Get("/{id}", productHandler.GetByID)

		// ==================== PROTECTED ROUTES ====================
		r.With(auth).Post("/", productHandler.Create)
	})
}
