package service

import (
	"github.com/haleview/clinic-api/internal/repository"
)

type Services struct {
	Patients     *PatientService
	Appointments *AppointmentService
	Stats        *StatsService
}

func NewService(repos *repository.Repositories) *Services {
	return &Services{
		Patients:     NewPatientService(repos.Patients),
		Appointments: NewAppointmentService(repos.Appointments, repos.Patients),
		Stats:        NewStatsService(repos.Patients, repos.Appointments),
	}
}
