package postgre

import (
	"context"
	"time"

	"portal-srv/internal/audit/repository"
	"portal-srv/internal/model"
)

// CreateLog - Insert a new audit row.
func (r *implRepository) CreateLog(ctx context.Context, opts repository.CreateLogOptions) (*model.AuditLog, error) {
	now := time.Now()

	const query = `
		INSERT INTO audit_logs (id, report_name, patient_id, actor_id, actor_role, action, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(ctx, query,
		opts.ID, opts.ReportName, opts.PatientID, opts.ActorID, opts.ActorRole, opts.Action, opts.Reason, now,
	); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.CreateLog: Failed to insert audit log: %v", err)
		return nil, repository.ErrCreateFailed
	}

	return &model.AuditLog{
		ID:         opts.ID,
		ReportName: opts.ReportName,
		PatientID:  opts.PatientID,
		ActorID:    opts.ActorID,
		ActorRole:  opts.ActorRole,
		Action:     opts.Action,
		Reason:     opts.Reason,
		CreatedAt:  now,
	}, nil
}

// ListLogs - List audit rows with filters and pagination, most recent first.
func (r *implRepository) ListLogs(ctx context.Context, opts repository.ListLogsOptions) ([]*model.AuditLog, error) {
	query, args := buildListLogsQuery(opts, false)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.ListLogs: Failed to query audit logs: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer rows.Close()

	var result []*model.AuditLog
	for rows.Next() {
		var entry model.AuditLog
		if err := rows.Scan(
			&entry.ID, &entry.ReportName, &entry.PatientID, &entry.ActorID,
			&entry.ActorRole, &entry.Action, &entry.Reason, &entry.CreatedAt,
		); err != nil {
			r.l.Errorf(ctx, "audit.repository.postgre.ListLogs: Failed to scan audit log: %v", err)
			return nil, repository.ErrQueryFailed
		}
		result = append(result, &entry)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.ListLogs: Iteration failed: %v", err)
		return nil, repository.ErrQueryFailed
	}

	return result, nil
}

// CountLogs - Count audit rows matching the filters.
func (r *implRepository) CountLogs(ctx context.Context, opts repository.ListLogsOptions) (int64, error) {
	query, args := buildListLogsQuery(opts, true)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "audit.repository.postgre.CountLogs: Failed to count audit logs: %v", err)
		return 0, repository.ErrQueryFailed
	}
	return total, nil
}
