package patient

import "errors"

var (
	ErrPatientRequired      = errors.New("patient ID is required")
	ErrPatientNotFound      = errors.New("patient not found")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidPhone         = errors.New("invalid phone number")
	ErrNotPermitted         = errors.New("patients may only access their own records")
	ErrDirectoryUnavailable = errors.New("patient directory is unavailable")
)
