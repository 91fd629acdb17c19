package router

import (
	"net/http"

	"github.com/haleview/clinic-api/internal/handler"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerAppointmentRoutes maps the /appointments group onto the
// appointment handler.
func registerAppointmentRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/appointments")

	g.POST("/", handler.Handle(h.Appointments.Handler, h.Appointments.Create, http.StatusCreated, &model.CreateAppointmentRequest{}))
	g.GET("/", handler.Handle(h.Appointments.Handler, h.Appointments.List, http.StatusOK, &model.ListAppointmentsRequest{}))
	g.GET("/:id", handler.Handle(h.Appointments.Handler, h.Appointments.Get, http.StatusOK, &model.GetAppointmentRequest{}))
	g.PUT("/:id", handler.Handle(h.Appointments.Handler, h.Appointments.Update, http.StatusOK, &model.UpdateAppointmentRequest{}))
	g.DELETE("/:id", handler.HandleNoContent(h.Appointments.Handler, h.Appointments.Delete, http.StatusNoContent, &model.DeleteAppointmentRequest{}))
}
