package http

import (
	"time"

	"portal-srv/internal/audit"
	"portal-srv/pkg/paginator"
)

type listLogsReq struct {
	PatientID string `form:"patient_id"`
	Action    string `form:"action"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r listLogsReq) toInput() audit.ListInput {
	return audit.ListInput{
		PatientID: r.PatientID,
		Action:    r.Action,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type auditLogResp struct {
	ID         string `json:"id"`
	ReportName string `json:"report_name"`
	PatientID  string `json:"patient_id"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	Action     string `json:"action"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type listLogsResp struct {
	Logs      []auditLogResp              `json:"logs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListLogsResp(o audit.ListOutput) listLogsResp {
	logs := make([]auditLogResp, 0, len(o.Logs))
	for _, l := range o.Logs {
		logs = append(logs, auditLogResp{
			ID:         l.ID,
			ReportName: l.ReportName,
			PatientID:  l.PatientID,
			ActorID:    l.ActorID,
			ActorRole:  l.ActorRole,
			Action:     l.Action,
			Reason:     l.Reason,
			CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return listLogsResp{
		Logs:      logs,
		Paginator: o.Paginator.ToResponse(),
	}
}
