package service

import (
	"context"

	"github.com/haleview/clinic-api/internal/errs"
	"github.com/haleview/clinic-api/internal/model"
)

// defaultListLimit caps list responses when the caller does not ask
// for an explicit page size.
const defaultListLimit = 100

var codePatientExists = "PATIENT_ALREADY_EXISTS"

// PatientStore is the slice of the patient repository the services
// consume. Declared here so tests can substitute a stub.
type PatientStore interface {
	Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetByID(ctx context.Context, id int) (*model.Patient, error)
	GetByEmail(ctx context.Context, email string) (*model.Patient, error)
	List(ctx context.Context, search string, skip, limit int) ([]model.Patient, error)
	Update(ctx context.Context, req *model.UpdatePatientRequest) (*model.Patient, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type PatientService struct {
	patients PatientStore
}

func NewPatientService(patients PatientStore) *PatientService {
	return &PatientService{patients: patients}
}

// Create registers a patient. The email pre-check turns the common
// duplicate case into a conflict response before touching the insert;
// the unique constraint on the table stays the real guard against
// concurrent registrations.
func (s *PatientService) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	existing, err := s.patients.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError("A patient with this email is already registered", true, &codePatientExists)
	}

	return s.patients.Create(ctx, req)
}

func (s *PatientService) Get(ctx context.Context, req *model.GetPatientRequest) (*model.Patient, error) {
	return s.patients.GetByID(ctx, req.ID)
}

// List returns one page of patients. Limit zero means the caller did
// not choose a page size and falls back to defaultListLimit.
func (s *PatientService) List(ctx context.Context, req *model.ListPatientsRequest) ([]model.Patient, error) {
	limit := req.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	return s.patients.List(ctx, req.Search, req.Skip, limit)
}

// Update applies a partial update. When the email changes, the same
// advisory uniqueness check as Create runs against the new address;
// re-submitting the patient's current email is not a conflict.
func (s *PatientService) Update(ctx context.Context, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if req.Email != nil {
		existing, err := s.patients.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != req.ID {
			return nil, errs.NewConflictError("A patient with this email is already registered", true, &codePatientExists)
		}
	}

	return s.patients.Update(ctx, req)
}

// Delete removes a patient along with all of their appointments.
func (s *PatientService) Delete(ctx context.Context, req *model.DeletePatientRequest) error {
	return s.patients.Delete(ctx, req.ID)
}
