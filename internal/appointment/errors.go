package appointment

import "errors"

var (
	ErrPatientRequired     = errors.New("patient ID is required")
	ErrDoctorRequired      = errors.New("doctor name is required")
	ErrInvalidSchedule     = errors.New("appointment must be scheduled in the future")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAlreadyCancelled    = errors.New("appointment is already cancelled")
	ErrNotPermitted        = errors.New("patients may only manage their own appointments")
	ErrStoreUnavailable    = errors.New("appointment store is unavailable")
)
