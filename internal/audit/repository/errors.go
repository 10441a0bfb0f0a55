package repository

import "errors"

var (
	ErrCreateFailed = errors.New("repository: failed to create audit log")
	ErrQueryFailed  = errors.New("repository: failed to query audit logs")
)
