package repository

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrQueryFailed         = errors.New("appointment query failed")
	ErrMutationFailed      = errors.New("appointment mutation failed")
)
