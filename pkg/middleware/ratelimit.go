package middleware

import (
	"net"
	"net/http"
	"sync"

	"storefront/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; it is reset once exceeded.
const maxTrackedClients = 10000

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	logger   *zap.Logger
}

func NewRateLimiter(requestsPerSecond float64, burst int, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   logger,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", r.URL.Path),
				zap.String("method", r.Method))
			utils.ResponseTooManyRequests(w, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
