package handler

import (
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/server"
	"github.com/haleview/clinic-api/internal/service"
	"github.com/labstack/echo/v4"
)

// AppointmentHandler serves the /appointments endpoints.
type AppointmentHandler struct {
	Handler
	appointments *service.AppointmentService
}

func NewAppointmentHandler(s *server.Server, appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		Handler:      NewHandler(s),
		appointments: appointments,
	}
}

// Create books an appointment for an existing patient.
func (h *AppointmentHandler) Create(c echo.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	return h.appointments.Create(c.Request().Context(), req)
}

// List returns one page of appointments, optionally narrowed by
// patient, status, and calendar day.
func (h *AppointmentHandler) List(c echo.Context, req *model.ListAppointmentsRequest) ([]model.Appointment, error) {
	return h.appointments.List(c.Request().Context(), req)
}

// Get returns one appointment by id, including the patient summary.
func (h *AppointmentHandler) Get(c echo.Context, req *model.GetAppointmentRequest) (*model.Appointment, error) {
	return h.appointments.Get(c.Request().Context(), req)
}

// Update applies a partial update to one appointment.
func (h *AppointmentHandler) Update(c echo.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	return h.appointments.Update(c.Request().Context(), req)
}

// Delete removes one appointment.
func (h *AppointmentHandler) Delete(c echo.Context, req *model.DeleteAppointmentRequest) error {
	return h.appointments.Delete(c.Request().Context(), req)
}
