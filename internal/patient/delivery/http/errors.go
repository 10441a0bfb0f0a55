package http

import (
	"errors"

	"portal-srv/internal/patient"
	pkgErrors "portal-srv/pkg/errors"
)

var (
	errPatientRequired      = pkgErrors.NewHTTPError(400, "Patient ID is required")
	errPatientNotFound      = pkgErrors.NewHTTPError(404, "Patient not found")
	errInvalidEmail         = pkgErrors.NewHTTPError(400, "Invalid email address")
	errInvalidPhone         = pkgErrors.NewHTTPError(400, "Invalid phone number")
	errNotPermitted         = pkgErrors.NewHTTPError(403, "Patients may only access their own records")
	errDirectoryUnavailable = pkgErrors.NewHTTPError(503, "Patient directory is unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientRequired):
		return errPatientRequired
	case errors.Is(err, patient.ErrPatientNotFound):
		return errPatientNotFound
	case errors.Is(err, patient.ErrInvalidEmail):
		return errInvalidEmail
	case errors.Is(err, patient.ErrInvalidPhone):
		return errInvalidPhone
	case errors.Is(err, patient.ErrNotPermitted):
		return errNotPermitted
	case errors.Is(err, patient.ErrDirectoryUnavailable):
		return errDirectoryUnavailable
	default:
		panic(err)
	}
}
