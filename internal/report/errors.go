package report

import "errors"

var (
	ErrPatientRequired    = errors.New("patient_id is required")
	ErrReportNotFound     = errors.New("report not found")
	ErrBackendUnavailable = errors.New("storage backend unavailable")
	ErrRenewalFailed      = errors.New("signed URL renewal failed")
	ErrBackendError       = errors.New("report mutation failed")
	ErrMissingReason      = errors.New("delete requires a reason")
	ErrActionNotAllowed   = errors.New("action not allowed for role")
	ErrInvalidDepartment  = errors.New("invalid department")
	ErrFileRequired       = errors.New("file is required")
)
