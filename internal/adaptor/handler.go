package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"storefront/internal/usecase"
	"storefront/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// decodeJSON reads a JSON body into dst. An empty body is accepted when
// allowEmpty is set and leaves dst untouched.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if allowEmpty && errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// pathParam returns the decoded URL parameter. chi matches on RawPath when
// the request carries one, leaving the segment percent-encoded.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}

	decoded, err := url.PathUnescape(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s %q", key, value)
	}
	return decoded, nil
}

// writeServiceError maps usecase errors to HTTP statuses. Not-found errors
// are written by notFound so each handler keeps its own convention.
func writeServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string, notFound func(http.ResponseWriter, string)) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		notFound(w, errMsg)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg)
	}
}
