package repository

import (
	"context"

	"portal-srv/internal/model"
)

// Repository is the patient directory store. The MongoDB implementation
// decrypts PHI fields before returning; the Redis implementation wraps
// another Repository with a read-through cache.
//
//go:generate mockery --name Repository
type Repository interface {
	GetPatient(ctx context.Context, patientID string) (*model.Patient, error)
	PatientExists(ctx context.Context, patientID string) (bool, error)
	UpdatePatient(ctx context.Context, opts UpdatePatientOptions) (*model.Patient, error)
	ListFamilyMembers(ctx context.Context, patientID string) ([]model.FamilyMember, error)
}
