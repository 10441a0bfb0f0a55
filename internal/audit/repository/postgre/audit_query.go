package postgre

import (
	"fmt"
	"strings"

	"portal-srv/internal/audit/repository"
)

// buildListLogsQuery - Build the list or count query for audit logs.
func buildListLogsQuery(opts repository.ListLogsOptions, count bool) (string, []interface{}) {
	var sb strings.Builder
	if count {
		sb.WriteString("SELECT COUNT(*) FROM audit_logs")
	} else {
		sb.WriteString("SELECT id, report_name, patient_id, actor_id, actor_role, action, reason, created_at FROM audit_logs")
	}

	var conds []string
	var args []interface{}
	if opts.PatientID != "" {
		args = append(args, opts.PatientID)
		conds = append(conds, fmt.Sprintf("patient_id = $%d", len(args)))
	}
	if opts.Action != "" {
		args = append(args, opts.Action)
		conds = append(conds, fmt.Sprintf("action = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	if !count {
		sb.WriteString(" ORDER BY created_at DESC")
		if opts.Limit > 0 {
			args = append(args, opts.Limit)
			sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
		}
		if opts.Offset > 0 {
			args = append(args, opts.Offset)
			sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
		}
	}

	return sb.String(), args
}
