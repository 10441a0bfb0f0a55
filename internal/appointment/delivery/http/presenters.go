package http

import (
	"time"

	"portal-srv/internal/appointment"
	"portal-srv/internal/model"
)

type bookAppointmentReq struct {
	PatientID   string    `json:"patient_id" binding:"required"`
	DoctorName  string    `json:"doctor_name" binding:"required"`
	Department  string    `json:"department"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Note        string    `json:"note"`
}

func (r bookAppointmentReq) toInput() appointment.BookInput {
	return appointment.BookInput{
		PatientID:   r.PatientID,
		DoctorName:  r.DoctorName,
		Department:  r.Department,
		ScheduledAt: r.ScheduledAt,
		Note:        r.Note,
	}
}

type listAppointmentsReq struct {
	PatientID string `form:"patient_id"`
	Status    string `form:"status"`
}

func (r listAppointmentsReq) toInput() appointment.ListInput {
	return appointment.ListInput{PatientID: r.PatientID, Status: r.Status}
}

type cancelAppointmentReq struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
}

func (r cancelAppointmentReq) toInput() appointment.CancelInput {
	return appointment.CancelInput{AppointmentID: r.AppointmentID}
}

type appointmentResp struct {
	ID          string `json:"id"`
	PatientID   string `json:"patient_id"`
	DoctorName  string `json:"doctor_name"`
	Department  string `json:"department,omitempty"`
	ScheduledAt string `json:"scheduled_at"`
	Status      string `json:"status"`
	Note        string `json:"note,omitempty"`
}

type listAppointmentsResp struct {
	Appointments []appointmentResp `json:"appointments"`
}

func newAppointmentResp(a model.Appointment) appointmentResp {
	return appointmentResp{
		ID:          a.ID,
		PatientID:   a.PatientID,
		DoctorName:  a.DoctorName,
		Department:  a.Department,
		ScheduledAt: a.ScheduledAt.UTC().Format(time.RFC3339),
		Status:      a.Status,
		Note:        a.Note,
	}
}

func newListAppointmentsResp(appointments []model.Appointment) listAppointmentsResp {
	resp := listAppointmentsResp{Appointments: make([]appointmentResp, 0, len(appointments))}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, newAppointmentResp(a))
	}
	return resp
}
