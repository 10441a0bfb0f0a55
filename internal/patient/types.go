package patient

import "portal-srv/internal/model"

// Existence sources, reported so callers can tell a local directory hit
// from an upstream HIS lookup.
const (
	SourceLocal = "local"
	SourceHIS   = "his"
)

type ExistsInput struct {
	PatientID string
}

type ExistsOutput struct {
	Exists bool
	Source string
}

type FamilyInput struct {
	PatientID string
}

type FamilyOutput struct {
	Members []model.FamilyMember
}

type GetProfileInput struct {
	PatientID string
}

type GetProfileOutput struct {
	Patient model.Patient
}

type UpdateProfileInput struct {
	PatientID string
	Email     string
	Phone     string
	Address   string
}

type UpdateProfileOutput struct {
	Patient model.Patient
}
