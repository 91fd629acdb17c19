package service

import (
	"context"

	"github.com/haleview/clinic-api/internal/errs"
	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/repository"
)

// AppointmentStore is the slice of the appointment repository the
// services consume.
type AppointmentStore interface {
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetByID(ctx context.Context, id int) (*model.Appointment, error)
	List(ctx context.Context, filter repository.AppointmentFilter, skip, limit int) ([]model.Appointment, error)
	Update(ctx context.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (map[model.AppointmentStatus]int, error)
}

type AppointmentService struct {
	appointments AppointmentStore
	patients     PatientStore
}

func NewAppointmentService(appointments AppointmentStore, patients PatientStore) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
	}
}

// Create books an appointment for an existing patient. Status defaults
// to scheduled when the payload leaves it empty.
func (s *AppointmentService) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	// Resolve the patient first so an unknown id reads as a missing
	// patient rather than a constraint violation on the insert.
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	if req.Status == "" {
		req.Status = model.StatusScheduled
	}

	return s.appointments.Create(ctx, req)
}

func (s *AppointmentService) Get(ctx context.Context, req *model.GetAppointmentRequest) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, req.ID)
}

// List returns one page of appointments matching the optional filters.
func (s *AppointmentService) List(ctx context.Context, req *model.ListAppointmentsRequest) ([]model.Appointment, error) {
	filter := repository.AppointmentFilter{PatientID: req.PatientID}

	if req.Status != nil {
		status := model.AppointmentStatus(*req.Status)
		filter.Status = &status
	}
	if req.Date != nil {
		day, err := model.ParseDate(*req.Date)
		if err != nil {
			return nil, errs.NewBadRequestError("date must be formatted as YYYY-MM-DD", true, nil, nil, nil)
		}
		filter.Date = &day
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	return s.appointments.List(ctx, filter, req.Skip, limit)
}

// ListForPatient returns one page of a patient's appointments,
// reporting NotFound when the patient itself does not exist.
func (s *AppointmentService) ListForPatient(ctx context.Context, req *model.GetPatientAppointmentsRequest) ([]model.Appointment, error) {
	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	filter := repository.AppointmentFilter{PatientID: &req.PatientID}
	return s.appointments.List(ctx, filter, req.Skip, limit)
}

// Update applies a partial update. Moving an appointment to another
// patient re-checks that the target patient exists.
func (s *AppointmentService) Update(ctx context.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if req.PatientID != nil {
		if _, err := s.patients.GetByID(ctx, *req.PatientID); err != nil {
			return nil, err
		}
	}

	return s.appointments.Update(ctx, req)
}

func (s *AppointmentService) Delete(ctx context.Context, req *model.DeleteAppointmentRequest) error {
	return s.appointments.Delete(ctx, req.ID)
}
