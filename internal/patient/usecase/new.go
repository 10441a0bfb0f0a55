package usecase

import (
	"portal-srv/internal/patient"
	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/hissrv"
	"portal-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.Repository
	his  hissrv.IHIS
}

func New(l log.Logger, repo repository.Repository, his hissrv.IHIS) patient.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		his:  his,
	}
}
