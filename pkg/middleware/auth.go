package middleware

import (
	"net/http"
	"strings"

	"storefront/pkg/utils"

	"go.uber.org/zap"
)

// TokenVerifier is satisfied by *utils.TokenManager.
type TokenVerifier interface {
	Verify(token string) (int64, error)
}

// Auth rejects requests without a valid bearer token and stores the
// token's user id in the request context.
func Auth(verifier TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Token required")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			userID, err := verifier.Verify(parts[1])
			if err != nil {
				logger.Warn("Invalid bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
