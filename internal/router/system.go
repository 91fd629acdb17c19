package router

import (
	"net/http"

	"github.com/haleview/clinic-api/internal/handler"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business
// logic: the welcome root, the health probe, aggregate stats, and the
// docs UI with its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Welcome.Welcome)

	// Health endpoint used by Kubernetes probes and uptime monitors.
	r.GET("/health", h.Health.CheckHealth)

	// Aggregate record counts across the clinic.
	r.GET("/stats/", handler.Handle(h.Stats.Handler, h.Stats.Overview, http.StatusOK, &model.StatsRequest{}))

	// Serve all files from ./static at /static/*. Used for
	// openapi.json and openapi.html.
	r.Static("/static", "static")

	// Docs UI endpoint (serves openapi.html).
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
