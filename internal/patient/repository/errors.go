package repository

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrQueryFailed     = errors.New("patient query failed")
	ErrMutationFailed  = errors.New("patient mutation failed")
)
