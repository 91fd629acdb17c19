package service

import (
	"context"

	"github.com/haleview/clinic-api/internal/model"
	"github.com/haleview/clinic-api/internal/repository"
)

// mockPatientStore implements PatientStore with per-test function
// fields. A call to an unset field panics, which surfaces store calls
// the test did not expect.
type mockPatientStore struct {
	createFn     func(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	getByIDFn    func(ctx context.Context, id int) (*model.Patient, error)
	getByEmailFn func(ctx context.Context, email string) (*model.Patient, error)
	listFn       func(ctx context.Context, search string, skip, limit int) ([]model.Patient, error)
	updateFn     func(ctx context.Context, req *model.UpdatePatientRequest) (*model.Patient, error)
	deleteFn     func(ctx context.Context, id int) error
	countFn      func(ctx context.Context) (int, error)
}

var _ PatientStore = (*mockPatientStore)(nil)

func (m *mockPatientStore) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	return m.createFn(ctx, req)
}

func (m *mockPatientStore) GetByID(ctx context.Context, id int) (*model.Patient, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockPatientStore) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockPatientStore) List(ctx context.Context, search string, skip, limit int) ([]model.Patient, error) {
	return m.listFn(ctx, search, skip, limit)
}

func (m *mockPatientStore) Update(ctx context.Context, req *model.UpdatePatientRequest) (*model.Patient, error) {
	return m.updateFn(ctx, req)
}

func (m *mockPatientStore) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockPatientStore) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

// mockAppointmentStore implements AppointmentStore the same way.
type mockAppointmentStore struct {
	createFn        func(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	getByIDFn       func(ctx context.Context, id int) (*model.Appointment, error)
	listFn          func(ctx context.Context, filter repository.AppointmentFilter, skip, limit int) ([]model.Appointment, error)
	updateFn        func(ctx context.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	deleteFn        func(ctx context.Context, id int) error
	countFn         func(ctx context.Context) (int, error)
	countByStatusFn func(ctx context.Context) (map[model.AppointmentStatus]int, error)
}

var _ AppointmentStore = (*mockAppointmentStore)(nil)

func (m *mockAppointmentStore) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	return m.createFn(ctx, req)
}

func (m *mockAppointmentStore) GetByID(ctx context.Context, id int) (*model.Appointment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAppointmentStore) List(ctx context.Context, filter repository.AppointmentFilter, skip, limit int) ([]model.Appointment, error) {
	return m.listFn(ctx, filter, skip, limit)
}

func (m *mockAppointmentStore) Update(ctx context.Context, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	return m.updateFn(ctx, req)
}

func (m *mockAppointmentStore) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAppointmentStore) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

func (m *mockAppointmentStore) CountByStatus(ctx context.Context) (map[model.AppointmentStatus]int, error) {
	return m.countByStatusFn(ctx)
}

func stubPatient(id int) *model.Patient {
	return &model.Patient{
		ID:        id,
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		Phone:     "555-1234",
	}
}

func stubAppointment(id, patientID int) *model.Appointment {
	p := stubPatient(patientID)
	summary := p.Summary()
	return &model.Appointment{
		ID:        id,
		PatientID: patientID,
		Reason:    "Annual checkup",
		Status:    model.StatusScheduled,
		Patient:   &summary,
	}
}
