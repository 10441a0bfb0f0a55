package hissrv

import "errors"

var (
	// ErrPatientNotFound is returned when the HIS has no record for the patient.
	ErrPatientNotFound = errors.New("patient not found in HIS")
	// ErrUnavailable is returned when the HIS gateway cannot be reached.
	ErrUnavailable = errors.New("HIS gateway unavailable")
)
