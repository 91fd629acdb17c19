package router

import (
	"net/http"

	"github.com/haleview/clinic-api/internal/handler"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/labstack/echo/v4"
)

// registerPatientRoutes maps the /patients group onto the patient
// handler. Collection endpoints keep their trailing slash.
func registerPatientRoutes(r *echo.Echo, h *handler.Handlers) {
	g := r.Group("/patients")

	g.POST("/", handler.Handle(h.Patients.Handler, h.Patients.Create, http.StatusCreated, &model.CreatePatientRequest{}))
	g.GET("/", handler.Handle(h.Patients.Handler, h.Patients.List, http.StatusOK, &model.ListPatientsRequest{}))
	g.GET("/:id", handler.Handle(h.Patients.Handler, h.Patients.Get, http.StatusOK, &model.GetPatientRequest{}))
	g.PUT("/:id", handler.Handle(h.Patients.Handler, h.Patients.Update, http.StatusOK, &model.UpdatePatientRequest{}))
	g.DELETE("/:id", handler.HandleNoContent(h.Patients.Handler, h.Patients.Delete, http.StatusNoContent, &model.DeletePatientRequest{}))
	g.GET("/:id/appointments", handler.Handle(h.Patients.Handler, h.Patients.ListAppointments, http.StatusOK, &model.GetPatientAppointmentsRequest{}))
}
