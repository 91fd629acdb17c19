package handler

import (
	"github.com/haleview/clinic-api/internal/server"
	"github.com/haleview/clinic-api/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one object
// instead of many.
type Handlers struct {
	Patients     *PatientHandler
	Appointments *AppointmentHandler
	Stats        *StatsHandler
	Health       *HealthHandler
	OpenAPI      *OpenAPIHandler
	Welcome      *WelcomeHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Patients:     NewPatientHandler(s, services.Patients, services.Appointments),
		Appointments: NewAppointmentHandler(s, services.Appointments),
		Stats:        NewStatsHandler(s, services.Stats),
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Welcome:      NewWelcomeHandler(s),
	}
}
