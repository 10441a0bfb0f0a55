package minio

import (
	"portal-srv/internal/report/repository"
	"portal-srv/pkg/log"
	"portal-srv/pkg/minio"
)

// Metadata keys carried on every report object.
const (
	metaKeyDepartment    = "Department"
	metaKeySubDepartment = "Sub-Department"
)

type implRepository struct {
	storage minio.MinIO
	l       log.Logger
	bucket  string
}

func New(storage minio.MinIO, l log.Logger, bucket string) repository.StorageRepository {
	return &implRepository{
		storage: storage,
		l:       l,
		bucket:  bucket,
	}
}
