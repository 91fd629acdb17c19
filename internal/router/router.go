// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/haleview/clinic-api/internal/handler"
	"github.com/haleview/clinic-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// New assembles the Echo application: the error funnel first, then the
// middleware chain, then the route groups.
func New(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	// Every error, echo's own included, flows through one funnel.
	r.HTTPErrorHandler = m.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the tracing and
	// logging layers that correlate on it, and recovery must wrap the
	// handlers it protects.
	r.Use(middleware.RequestID())
	r.Use(m.Tracing.NewRelicMiddleware())
	r.Use(m.ContextEnhancer.EnhanceContext())
	r.Use(m.Tracing.EnhanceTracing())
	r.Use(m.Global.RequestLogger())
	r.Use(m.Global.Recover())
	r.Use(m.Global.Secure())
	r.Use(m.Global.CORS())
	r.Use(m.RateLimit.Limit())

	registerSystemRoutes(r, h)
	registerPatientRoutes(r, h)
	registerAppointmentRoutes(r, h)

	return r
}
