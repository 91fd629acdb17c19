package middleware

import (
	"time"

	"github.com/haleview/clinic-api/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Default throttling: generous enough for legitimate clinic front-desk
// traffic, tight enough to blunt accidental retry storms.
const (
	rateLimitPerSecond = 20
	rateLimitBurst     = 50
	rateLimitExpiresIn = 3 * time.Minute
)

// RateLimitMiddleware applies per-client request throttling using
// Echo's in-memory token bucket store, keyed by client IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns the rate limiting middleware. Clients over the limit
// receive 429 through the global error handler, and each rejection is
// recorded as a New Relic custom event when APM is configured.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(rateLimitPerSecond),
			Burst:     rateLimitBurst,
			ExpiresIn: rateLimitExpiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			return echo.ErrTooManyRequests
		},
	})
}

// RecordRateLimitHit records a throttled request as a New Relic custom
// event so rejection spikes show up in APM.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
