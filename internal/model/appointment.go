package model

import "time"

// AppointmentStatus enumerates the lifecycle states of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the enumerated statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is one scheduled visit for a patient. Patient holds the
// owning patient's summary, populated by list/get reads via a join.
type Appointment struct {
	ID              int               `json:"id"`
	PatientID       int               `json:"patient_id"`
	AppointmentDate time.Time         `json:"appointment_date"`
	Reason          string            `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	Notes           *string           `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	Patient         *PatientSummary   `json:"patient,omitempty"`
}

// CreateAppointmentRequest is the payload for booking an appointment.
// Status is optional and defaults to "scheduled".
type CreateAppointmentRequest struct {
	PatientID       int               `json:"patient_id" validate:"required,gte=1"`
	AppointmentDate DateTime          `json:"appointment_date" validate:"required"`
	Reason          string            `json:"reason" validate:"required"`
	Status          AppointmentStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Notes           *string           `json:"notes"`
}

func (r *CreateAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAppointmentRequest is a partial update; nil fields leave the
// stored value untouched. Supplying patient_id re-checks that the
// referenced patient exists.
type UpdateAppointmentRequest struct {
	ID              int                `param:"id" json:"-" validate:"gte=1"`
	PatientID       *int               `json:"patient_id" validate:"omitnil,gte=1"`
	AppointmentDate *DateTime          `json:"appointment_date"`
	Reason          *string            `json:"reason" validate:"omitnil,min=1"`
	Status          *AppointmentStatus `json:"status" validate:"omitnil,oneof=scheduled completed cancelled"`
	Notes           *string            `json:"notes"`
}

func (r *UpdateAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// GetAppointmentRequest addresses a single appointment by path id.
type GetAppointmentRequest struct {
	ID int `param:"id" validate:"gte=1"`
}

func (r *GetAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteAppointmentRequest addresses the appointment to remove.
type DeleteAppointmentRequest struct {
	ID int `param:"id" validate:"gte=1"`
}

func (r *DeleteAppointmentRequest) Validate() error {
	return validate.Struct(r)
}

// ListAppointmentsRequest carries the optional conjunctive filters and
// the pagination window. Date filters on the calendar-day portion of
// appointment_date and is supplied as "YYYY-MM-DD".
type ListAppointmentsRequest struct {
	PatientID *int    `query:"patient_id" validate:"omitnil,gte=1"`
	Status    *string `query:"status" validate:"omitnil,oneof=scheduled completed cancelled"`
	Date      *string `query:"date" validate:"omitnil,datetime=2006-01-02"`
	Skip      int     `query:"skip" validate:"gte=0"`
	Limit     int     `query:"limit" validate:"gte=0,lte=1000"`
}

func (r *ListAppointmentsRequest) Validate() error {
	return validate.Struct(r)
}
