package model

// Stats is the aggregate snapshot served by the stats endpoint.
// AppointmentsByStatus always carries all three statuses, zero-filled.
type Stats struct {
	PatientCount         int                       `json:"patient_count"`
	AppointmentCount     int                       `json:"appointment_count"`
	AppointmentsByStatus map[AppointmentStatus]int `json:"appointments_by_status"`
}

// StatsRequest is the empty payload for the stats endpoint; it exists
// so the endpoint can flow through the shared handler pipeline.
type StatsRequest struct{}

func (r *StatsRequest) Validate() error {
	return nil
}
