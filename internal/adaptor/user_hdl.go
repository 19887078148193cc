package adaptor

import (
	"net/http"

	"storefront/internal/dto/request"
	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeJSON(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed: "+utils.FormatValidationErrors(errs))
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Authenticate handles POST /users/authenticate
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req request.AuthenticateRequest
	if err := decodeJSON(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	resp, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "authenticate")
		return
	}
	if resp == nil {
		utils.ResponseUnauthorized(w, "Invalid credentials")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// GetAll handles GET /users
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// GetByID handles GET /users/{id}, including recent purchases
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	detail, err := h.service.GetWithHistory(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, detail)
}

func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(h.log, w, err, operation, utils.ResponseBadRequest)
}
