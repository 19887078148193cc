package middleware

import (
	"net/http"

	"storefront/pkg/utils"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or generates one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := utils.SetRequestIDContext(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
