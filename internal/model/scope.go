package model

// Roles recognized by the portal.
const (
	RolePatient    = "PATIENT"
	RoleDoctor     = "DOCTOR"
	RoleTechnician = "TECHNICIAN"
)

// Scope carries the authenticated caller identity for a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsStaff reports whether the caller is hospital staff (doctor or technician).
func (s Scope) IsStaff() bool {
	return s.Role == RoleDoctor || s.Role == RoleTechnician
}
