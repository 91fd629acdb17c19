package repository

import (
	"github.com/haleview/clinic-api/internal/server"
)

// Repositories is a container for all repository instances, passed as
// one object through service wiring instead of many.
type Repositories struct {
	Patients     *PatientRepository
	Appointments *AppointmentRepository
}

// NewRepositories constructs the repository container from the shared
// application resources (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Patients:     NewPatientRepository(s.DB.Pool),
		Appointments: NewAppointmentRepository(s.DB.Pool),
	}
}
