package service

import (
	"context"

	"github.com/haleview/clinic-api/internal/model"
)

type StatsService struct {
	patients     PatientStore
	appointments AppointmentStore
}

func NewStatsService(patients PatientStore, appointments AppointmentStore) *StatsService {
	return &StatsService{
		patients:     patients,
		appointments: appointments,
	}
}

// Overview aggregates record counts across the clinic: total patients,
// total appointments, and appointments broken down by status.
func (s *StatsService) Overview(ctx context.Context, _ *model.StatsRequest) (*model.Stats, error) {
	patientCount, err := s.patients.Count(ctx)
	if err != nil {
		return nil, err
	}

	appointmentCount, err := s.appointments.Count(ctx)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		PatientCount:         patientCount,
		AppointmentCount:     appointmentCount,
		AppointmentsByStatus: byStatus,
	}, nil
}
