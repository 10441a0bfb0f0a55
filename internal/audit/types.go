package audit

import (
	"portal-srv/internal/model"
	"portal-srv/pkg/paginator"
)

type CreateInput struct {
	ReportName string
	PatientID  string
	Action     string
	Reason     string
}

type ListInput struct {
	PatientID     string
	Action        string
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Logs      []model.AuditLog
	Paginator paginator.Paginator
}
