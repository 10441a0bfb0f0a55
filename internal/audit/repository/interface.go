package repository

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name AuditRepository
type AuditRepository interface {
	CreateLog(ctx context.Context, opts CreateLogOptions) (*model.AuditLog, error)
	ListLogs(ctx context.Context, opts ListLogsOptions) ([]*model.AuditLog, error)
	CountLogs(ctx context.Context, opts ListLogsOptions) (int64, error)
}
