package http

import (
	"errors"

	"portal-srv/internal/report"
	pkgErrors "portal-srv/pkg/errors"
)

var (
	errPatientRequired    = pkgErrors.NewHTTPError(400, "Patient ID is required")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errBackendUnavailable = pkgErrors.NewHTTPError(503, "Report storage is unavailable")
	errRenewalFailed      = pkgErrors.NewHTTPError(502, "Failed to renew signed URL")
	errBackendError       = pkgErrors.NewHTTPError(502, "Report operation failed")
	errMissingReason      = pkgErrors.NewHTTPError(400, "A reason is required to delete a report")
	errActionNotAllowed   = pkgErrors.NewHTTPError(403, "Action not allowed for your role")
	errInvalidDepartment  = pkgErrors.NewHTTPError(400, "Invalid department or sub-department")
	errFileRequired       = pkgErrors.NewHTTPError(400, "A file is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrPatientRequired):
		return errPatientRequired
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrBackendUnavailable):
		return errBackendUnavailable
	case errors.Is(err, report.ErrRenewalFailed):
		return errRenewalFailed
	case errors.Is(err, report.ErrBackendError):
		return errBackendError
	case errors.Is(err, report.ErrMissingReason):
		return errMissingReason
	case errors.Is(err, report.ErrActionNotAllowed):
		return errActionNotAllowed
	case errors.Is(err, report.ErrInvalidDepartment):
		return errInvalidDepartment
	case errors.Is(err, report.ErrFileRequired):
		return errFileRequired
	default:
		panic(err)
	}
}
