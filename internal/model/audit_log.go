package model

import "time"

// Audit actions recorded for report mutations.
const (
	AuditActionArchive = "ARCHIVE"
	AuditActionDelete  = "DELETE"
)

// AuditLog is one archive/delete audit row in PostgreSQL.
type AuditLog struct {
	ID         string
	ReportName string
	PatientID  string
	ActorID    string
	ActorRole  string
	Action     string
	Reason     string
	CreatedAt  time.Time
}
