package appointment

import (
	"time"

	"portal-srv/internal/model"
)

type BookInput struct {
	PatientID   string
	DoctorName  string
	Department  string
	ScheduledAt time.Time
	Note        string
}

type BookOutput struct {
	Appointment model.Appointment
}

type ListInput struct {
	PatientID string
	Status    string
}

type ListOutput struct {
	Appointments []model.Appointment
}

type CancelInput struct {
	AppointmentID string
}
