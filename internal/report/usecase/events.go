package usecase

import (
	"context"
	"encoding/json"
	"time"

	"portal-srv/internal/model"
)

const (
	eventActionView     = "VIEW"
	eventActionDownload = "DOWNLOAD"
	eventActionShare    = "SHARE"
	eventActionArchive  = "ARCHIVE"
	eventActionDelete   = "DELETE"
	eventActionUpload   = "UPLOAD"
)

type actionEvent struct {
	Action     string `json:"action"`
	PatientID  string `json:"patient_id"`
	ReportName string `json:"report_name"`
	ActorID    string `json:"actor_id"`
	ActorRole  string `json:"actor_role"`
	Timestamp  string `json:"timestamp"`
}

// publishEvent emits a report action event for downstream analytics.
// Publish failures are logged and never fail the action itself.
func (uc *implUseCase) publishEvent(ctx context.Context, sc model.Scope, action, patientID, name string) {
	if uc.producer == nil {
		return
	}

	event := actionEvent{
		Action:     action,
		PatientID:  patientID,
		ReportName: name,
		ActorID:    sc.UserID,
		ActorRole:  sc.Role,
		Timestamp:  uc.clock().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishEvent: marshal failed: %v", err)
		return
	}

	if err := uc.producer.Publish([]byte(patientID), payload); err != nil {
		uc.l.Errorf(ctx, "report.usecase.publishEvent: publish failed: %v", err)
	}
}
