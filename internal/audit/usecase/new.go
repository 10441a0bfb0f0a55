package usecase

import (
	"portal-srv/internal/audit"
	"portal-srv/internal/audit/repository"
	"portal-srv/pkg/log"
)

type implUseCase struct {
	repo repository.AuditRepository
	l    log.Logger
}

// New creates a new audit UseCase implementation.
func New(repo repository.AuditRepository, l log.Logger) audit.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
