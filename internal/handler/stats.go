package handler

import (
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/server"
	"github.com/haleview/clinic-api/internal/service"
	"github.com/labstack/echo/v4"
)

// StatsHandler serves the /stats endpoint.
type StatsHandler struct {
	Handler
	stats *service.StatsService
}

func NewStatsHandler(s *server.Server, stats *service.StatsService) *StatsHandler {
	return &StatsHandler{
		Handler: NewHandler(s),
		stats:   stats,
	}
}

// Overview returns record counts across the clinic: total patients,
// total appointments, and appointments per status.
func (h *StatsHandler) Overview(c echo.Context, req *model.StatsRequest) (*model.Stats, error) {
	return h.stats.Overview(c.Request().Context(), req)
}
