package report

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	ListReports(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	RegenerateURL(ctx context.Context, sc model.Scope, input RegenerateInput) (RegenerateOutput, error)
	ViewReport(ctx context.Context, sc model.Scope, input ActionInput) (ViewOutput, error)
	DownloadReport(ctx context.Context, sc model.Scope, input ActionInput) (DownloadOutput, error)
	ShareReport(ctx context.Context, sc model.Scope, input ActionInput) (ShareOutput, error)
	ArchiveReport(ctx context.Context, sc model.Scope, input ArchiveInput) error
	DeleteReport(ctx context.Context, sc model.Scope, input DeleteInput) error
	UploadReport(ctx context.Context, sc model.Scope, input UploadInput) (UploadOutput, error)
}
