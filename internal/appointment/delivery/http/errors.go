package http

import (
	"errors"

	"portal-srv/internal/appointment"
	pkgErrors "portal-srv/pkg/errors"
)

var (
	errPatientRequired     = pkgErrors.NewHTTPError(400, "Patient ID is required")
	errDoctorRequired      = pkgErrors.NewHTTPError(400, "Doctor name is required")
	errInvalidSchedule     = pkgErrors.NewHTTPError(400, "Appointment must be scheduled in the future")
	errAppointmentNotFound = pkgErrors.NewHTTPError(404, "Appointment not found")
	errAlreadyCancelled    = pkgErrors.NewHTTPError(409, "Appointment is already cancelled")
	errNotPermitted        = pkgErrors.NewHTTPError(403, "Patients may only manage their own appointments")
	errStoreUnavailable    = pkgErrors.NewHTTPError(503, "Appointment store is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, appointment.ErrPatientRequired):
		return errPatientRequired
	case errors.Is(err, appointment.ErrDoctorRequired):
		return errDoctorRequired
	case errors.Is(err, appointment.ErrInvalidSchedule):
		return errInvalidSchedule
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		return errAppointmentNotFound
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return errAlreadyCancelled
	case errors.Is(err, appointment.ErrNotPermitted):
		return errNotPermitted
	case errors.Is(err, appointment.ErrStoreUnavailable):
		return errStoreUnavailable
	default:
		panic(err)
	}
}
