package adaptor

import (
	"net/http"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// Create handles POST /orders. The owner is the authenticated user.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Token required")
		return
	}

	var req request.CreateOrderRequest
	if err := decodeJSON(r, &req, true); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed: "+utils.FormatValidationErrors(errs))
		return
	}

	order, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseSuccess(w, order)
}

// GetDetail handles GET /orders/{id}
func (h *OrderHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	detail, err := h.service.GetDetail(r.Context(), orderID)
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, detail)
}

// GetCurrent handles GET /orders/current/{user_id}; writes null when the
// user has no active order.
func (h *OrderHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	order, err := h.service.GetCurrent(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "current order")
		return
	}

	utils.ResponseSuccess(w, order)
}

// GetCompleted handles GET /orders/completed/{user_id}
func (h *OrderHandler) GetCompleted(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	orders, err := h.service.GetCompleted(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "completed orders")
		return
	}

	utils.ResponseSuccess(w, orders)
}

// AddProduct handles POST /orders/{id}/products
func (h *OrderHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	var req request.AddProductRequest
	if err := decodeJSON(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed: "+utils.FormatValidationErrors(errs))
		return
	}

	item, err := h.service.AddProduct(r.Context(), orderID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add product to order")
		return
	}

	utils.ResponseSuccess(w, item)
}

func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation, utils.ResponseBadRequest)
}
