package adaptor

import (
	"net/http"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetAll handles GET /products
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list products")
		return
	}

	utils.ResponseSuccess(w, products)
}

// GetByID handles GET /products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		h.handleServiceError(w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// GetByCategory handles GET /products/category/{category}
func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := pathParam(r, "category")
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	products, err := h.service.GetByCategory(r.Context(), category)
	if err != nil {
		h.handleServiceError(w, err, "list products by category")
		return
	}

	utils.ResponseSuccess(w, products)
}

// GetTopSellers handles GET /products/top
func (h *ProductHandler) GetTopSellers(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetTopSellers(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "top sellers")
		return
	}

	utils.ResponseSuccess(w, products)
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if err := decodeJSON(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed: "+utils.FormatValidationErrors(errs))
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// product detail is the one route that reports a missing row as 404
func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation, utils.ResponseNotFound)
}
