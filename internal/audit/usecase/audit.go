package usecase

import (
	"context"

	"github.com/google/uuid"

	"portal-srv/internal/audit"
	"portal-srv/internal/audit/repository"
	"portal-srv/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input audit.CreateInput) error {
	if input.Action != model.AuditActionArchive && input.Action != model.AuditActionDelete {
		return audit.ErrInvalidAction
	}

	if _, err := uc.repo.CreateLog(ctx, repository.CreateLogOptions{
		ID:         uuid.NewString(),
		ReportName: input.ReportName,
		PatientID:  input.PatientID,
		ActorID:    sc.UserID,
		ActorRole:  sc.Role,
		Action:     input.Action,
		Reason:     input.Reason,
	}); err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Create: CreateLog failed: %v", err)
		return audit.ErrWriteFailed
	}

	return nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input audit.ListInput) (audit.ListOutput, error) {
	if !sc.IsStaff() {
		return audit.ListOutput{}, audit.ErrNotPermitted
	}

	input.PaginateQuery.Adjust()

	opts := repository.ListLogsOptions{
		PatientID: input.PatientID,
		Action:    input.Action,
		Limit:     input.PaginateQuery.Limit,
		Offset:    input.PaginateQuery.Offset(),
	}

	logs, err := uc.repo.ListLogs(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.List: ListLogs failed: %v", err)
		return audit.ListOutput{}, audit.ErrListFailed
	}

	total, err := uc.repo.CountLogs(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.List: CountLogs failed: %v", err)
		return audit.ListOutput{}, audit.ErrListFailed
	}

	out := audit.ListOutput{
		Paginator: paginatorFor(input, total, int64(len(logs))),
	}
	for _, entry := range logs {
		if entry != nil {
			out.Logs = append(out.Logs, *entry)
		}
	}
	return out, nil
}
