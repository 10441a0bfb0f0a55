package audit

import "errors"

var (
	ErrInvalidAction = errors.New("invalid audit action")
	ErrNotPermitted  = errors.New("audit trail is staff-only")
	ErrWriteFailed   = errors.New("failed to write audit log")
	ErrListFailed    = errors.New("failed to list audit logs")
)
