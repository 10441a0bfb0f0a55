package repository

import (
	"context"
	"time"
)

// Object is one stored report object under a patient prefix, before a
// signed URL has been minted for it.
type Object struct {
	Name          string
	PatientID     string
	SizeKB        int64
	UploadDate    time.Time
	Department    string
	SubDepartment string
}

//go:generate mockery --name StorageRepository
type StorageRepository interface {
	ListObjects(ctx context.Context, patientID string) ([]Object, error)
	StatObject(ctx context.Context, path string) (Object, error)
	MintURL(ctx context.Context, path string, ttl time.Duration) (string, time.Time, error)
	RetagDepartment(ctx context.Context, path, department string) error
	RemoveObject(ctx context.Context, path string) error
	PutObject(ctx context.Context, opts PutObjectOptions) (string, error)
}
