package redis

import (
	"time"

	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/log"
	"portal-srv/pkg/redis"
)

const (
	// cacheTTL bounds how long a stale existence or family answer can live.
	cacheTTL = 10 * time.Minute

	existsKeyFormat = "patient:exists:%s"
	familyKeyFormat = "patient:family:%s"
)

type implRepository struct {
	next repository.Repository
	rd   redis.IRedis
	l    log.Logger
}

// New wraps another patient repository with a Redis read-through cache for
// the existence check and family roster. Profile reads and writes pass
// through; a profile write invalidates the cached keys.
func New(l log.Logger, rd redis.IRedis, next repository.Repository) repository.Repository {
	return &implRepository{
		next: next,
		rd:   rd,
		l:    l,
	}
}
