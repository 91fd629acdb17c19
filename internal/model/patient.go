package model

import "time"

// Patient is a demographic record for one clinic patient.
type Patient struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth Date      `json:"date_of_birth"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PatientSummary is the subset of patient fields embedded in
// appointment responses.
type PatientSummary struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Summary converts a full patient record into its embedded form.
func (p *Patient) Summary() PatientSummary {
	return PatientSummary{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

// CreatePatientRequest is the payload for registering a new patient.
type CreatePatientRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       string  `json:"email" validate:"required,email,max=100"`
	Phone       string  `json:"phone" validate:"required,max=20"`
	DateOfBirth Date    `json:"date_of_birth" validate:"required"`
	Address     *string `json:"address"`
}

func (r *CreatePatientRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePatientRequest is a partial update. Nil fields are absent from
// the payload and leave the stored value untouched; `omitnil` skips
// validation only for absent fields, so explicit empty strings are
// still rejected.
type UpdatePatientRequest struct {
	ID          int     `param:"id" json:"-" validate:"gte=1"`
	FirstName   *string `json:"first_name" validate:"omitnil,min=1,max=50"`
	LastName    *string `json:"last_name" validate:"omitnil,min=1,max=50"`
	Email       *string `json:"email" validate:"omitnil,email,max=100"`
	Phone       *string `json:"phone" validate:"omitnil,min=1,max=20"`
	DateOfBirth *Date   `json:"date_of_birth"`
	Address     *string `json:"address"`
}

func (r *UpdatePatientRequest) Validate() error {
	return validate.Struct(r)
}

// GetPatientRequest addresses a single patient by path id.
type GetPatientRequest struct {
	ID int `param:"id" validate:"gte=1"`
}

func (r *GetPatientRequest) Validate() error {
	return validate.Struct(r)
}

// DeletePatientRequest addresses the patient to remove. Deleting a
// patient also removes every appointment that references it.
type DeletePatientRequest struct {
	ID int `param:"id" validate:"gte=1"`
}

func (r *DeletePatientRequest) Validate() error {
	return validate.Struct(r)
}

// ListPatientsRequest carries the optional search term and pagination
// window. A zero Limit means "not supplied" and is defaulted by the
// service; explicit limits must stay within 1..1000.
type ListPatientsRequest struct {
	Search string `query:"search" validate:"omitempty,max=100"`
	Skip   int    `query:"skip" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0,lte=1000"`
}

func (r *ListPatientsRequest) Validate() error {
	return validate.Struct(r)
}

// GetPatientAppointmentsRequest lists one patient's appointments.
// Fails with NotFound when the patient itself does not exist.
type GetPatientAppointmentsRequest struct {
	PatientID int `param:"id" validate:"gte=1"`
	Skip      int `query:"skip" validate:"gte=0"`
	Limit     int `query:"limit" validate:"gte=0,lte=1000"`
}

func (r *GetPatientAppointmentsRequest) Validate() error {
	return validate.Struct(r)
}
