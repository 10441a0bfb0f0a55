package http

import (
	"errors"

	"portal-srv/internal/audit"
	pkgErrors "portal-srv/pkg/errors"
)

var (
	errInvalidAction = pkgErrors.NewHTTPError(400, "Invalid audit action filter")
	errNotPermitted  = pkgErrors.NewHTTPError(403, "Audit trail is restricted to staff")
	errListFailed    = pkgErrors.NewHTTPError(502, "Failed to list audit logs")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, audit.ErrInvalidAction):
		return errInvalidAction
	case errors.Is(err, audit.ErrNotPermitted):
		return errNotPermitted
	case errors.Is(err, audit.ErrListFailed):
		return errListFailed
	default:
		panic(err)
	}
}
