package postgre

import (
	"database/sql"

	"portal-srv/internal/audit/repository"
	"portal-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.AuditRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
