package model

import "time"

// Appointment statuses.
const (
	AppointmentStatusBooked    = "BOOKED"
	AppointmentStatusCancelled = "CANCELLED"
)

// Appointment is an appointment document stored in MongoDB.
type Appointment struct {
	ID          string    `bson:"_id"`
	PatientID   string    `bson:"patient_id"`
	DoctorName  string    `bson:"doctor_name"`
	Department  string    `bson:"department"`
	ScheduledAt time.Time `bson:"scheduled_at"`
	Status      string    `bson:"status"`
	Note        string    `bson:"note,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
