package repository

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateAppointment(ctx context.Context, opts CreateAppointmentOptions) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	ListAppointments(ctx context.Context, opts ListAppointmentsOptions) ([]model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}
