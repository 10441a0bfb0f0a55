package repository

import "time"

type CreateAppointmentOptions struct {
	ID          string
	PatientID   string
	DoctorName  string
	Department  string
	ScheduledAt time.Time
	Note        string
}

// ListAppointmentsOptions filters the listing. Empty fields match everything.
type ListAppointmentsOptions struct {
	PatientID string
	Status    string
}
