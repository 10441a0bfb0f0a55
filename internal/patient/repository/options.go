package repository

// UpdatePatientOptions carries the mutable profile fields. Empty fields are
// left untouched.
type UpdatePatientOptions struct {
	ID      string
	Email   string
	Phone   string
	Address string
}
