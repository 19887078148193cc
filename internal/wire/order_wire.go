package wire

import (
	"net/http"

	"storefront/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// every order route requires a bearer token
func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", orderHandler.Create)
		r.Get("/current/{user_id}", orderHandler.GetCurrent)
		r.Get("/completed/{user_id}", orderHandler.GetCompleted)
		r.Get("/{id}", orderHandler.GetDetail)
		r.Post("/{id}/products", orderHandler.AddProduct)
	})
}
