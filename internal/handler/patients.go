package handler

import (
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/server"
	"github.com/haleview/clinic-api/internal/service"
	"github.com/labstack/echo/v4"
)

// PatientHandler serves the /patients endpoints.
type PatientHandler struct {
	Handler
	patients     *service.PatientService
	appointments *service.AppointmentService
}

func NewPatientHandler(s *server.Server, patients *service.PatientService, appointments *service.AppointmentService) *PatientHandler {
	return &PatientHandler{
		Handler:      NewHandler(s),
		patients:     patients,
		appointments: appointments,
	}
}

// Create registers a new patient.
func (h *PatientHandler) Create(c echo.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	return h.patients.Create(c.Request().Context(), req)
}

// List returns one page of patients, optionally narrowed by a search
// term over names and email.
func (h *PatientHandler) List(c echo.Context, req *model.ListPatientsRequest) ([]model.Patient, error) {
	return h.patients.List(c.Request().Context(), req)
}

// Get returns one patient by id.
func (h *PatientHandler) Get(c echo.Context, req *model.GetPatientRequest) (*model.Patient, error) {
	return h.patients.Get(c.Request().Context(), req)
}

// Update applies a partial update to one patient.
func (h *PatientHandler) Update(c echo.Context, req *model.UpdatePatientRequest) (*model.Patient, error) {
	return h.patients.Update(c.Request().Context(), req)
}

// Delete removes a patient and, through the cascade, every
// appointment they own.
func (h *PatientHandler) Delete(c echo.Context, req *model.DeletePatientRequest) error {
	return h.patients.Delete(c.Request().Context(), req)
}

// ListAppointments returns one page of a single patient's appointments.
func (h *PatientHandler) ListAppointments(c echo.Context, req *model.GetPatientAppointmentsRequest) ([]model.Appointment, error) {
	return h.appointments.ListForPatient(c.Request().Context(), req)
}
