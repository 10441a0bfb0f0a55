package usecase

import (
	"time"

	"portal-srv/internal/audit"
	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
	"portal-srv/pkg/kafka"
	"portal-srv/pkg/log"
)

const (
	defaultMintTTL    = 60 * time.Second
	defaultRenewalTTL = time.Hour
)

// Config holds signed URL lifetime policy.
type Config struct {
	// MintTTL is the validity window of URLs minted during listing.
	MintTTL time.Duration
	// RenewalTTL is the single policy window applied on every renewal.
	RenewalTTL time.Duration
}

type implUseCase struct {
	repo     repository.StorageRepository
	auditUC  audit.UseCase
	producer kafka.IProducer
	l        log.Logger
	config   Config
	clock    func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	repo repository.StorageRepository,
	auditUC audit.UseCase,
	producer kafka.IProducer,
	l log.Logger,
	cfg Config,
) report.UseCase {
	if cfg.MintTTL <= 0 {
		cfg.MintTTL = defaultMintTTL
	}
	if cfg.RenewalTTL <= 0 {
		cfg.RenewalTTL = defaultRenewalTTL
	}

	return &implUseCase{
		repo:     repo,
		auditUC:  auditUC,
		producer: producer,
		l:        l,
		config:   cfg,
		clock:    time.Now,
	}
}
