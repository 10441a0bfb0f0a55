package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"portal-srv/internal/appointment"
	"portal-srv/internal/appointment/repository"
	"portal-srv/internal/model"
)

// canAccess enforces that patients only touch their own appointments.
func canAccess(sc model.Scope, patientID string) bool {
	if sc.IsStaff() {
		return true
	}
	return sc.UserID == patientID
}

func (uc *implUseCase) Book(ctx context.Context, sc model.Scope, input appointment.BookInput) (appointment.BookOutput, error) {
	if input.PatientID == "" {
		return appointment.BookOutput{}, appointment.ErrPatientRequired
	}
	if strings.TrimSpace(input.DoctorName) == "" {
		return appointment.BookOutput{}, appointment.ErrDoctorRequired
	}
	if !input.ScheduledAt.After(uc.clock()) {
		return appointment.BookOutput{}, appointment.ErrInvalidSchedule
	}
	if !canAccess(sc, input.PatientID) {
		return appointment.BookOutput{}, appointment.ErrNotPermitted
	}

	a, err := uc.repo.CreateAppointment(ctx, repository.CreateAppointmentOptions{
		ID:          uuid.NewString(),
		PatientID:   input.PatientID,
		DoctorName:  input.DoctorName,
		Department:  input.Department,
		ScheduledAt: input.ScheduledAt,
		Note:        input.Note,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.Book: CreateAppointment failed: %v", err)
		return appointment.BookOutput{}, appointment.ErrStoreUnavailable
	}

	uc.publishReminder(ctx, *a)
	return appointment.BookOutput{Appointment: *a}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input appointment.ListInput) (appointment.ListOutput, error) {
	if input.PatientID == "" {
		return appointment.ListOutput{}, appointment.ErrPatientRequired
	}
	if !canAccess(sc, input.PatientID) {
		return appointment.ListOutput{}, appointment.ErrNotPermitted
	}

	appointments, err := uc.repo.ListAppointments(ctx, repository.ListAppointmentsOptions{
		PatientID: input.PatientID,
		Status:    input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.List: ListAppointments failed: %v", err)
		return appointment.ListOutput{}, appointment.ErrStoreUnavailable
	}
	return appointment.ListOutput{Appointments: appointments}, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, input appointment.CancelInput) error {
	a, err := uc.repo.GetAppointment(ctx, input.AppointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return appointment.ErrAppointmentNotFound
		}
		uc.l.Errorf(ctx, "appointment.usecase.Cancel: GetAppointment failed: %v", err)
		return appointment.ErrStoreUnavailable
	}

	if !canAccess(sc, a.PatientID) {
		return appointment.ErrNotPermitted
	}
	if a.Status == model.AppointmentStatusCancelled {
		return appointment.ErrAlreadyCancelled
	}

	if err := uc.repo.UpdateStatus(ctx, a.ID, model.AppointmentStatusCancelled); err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.Cancel: UpdateStatus failed: %v", err)
		return appointment.ErrStoreUnavailable
	}
	return nil
}
