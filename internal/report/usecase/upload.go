package usecase

import (
	"context"
	"strings"

	"portal-srv/internal/model"
	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
)

func (uc *implUseCase) UploadReport(ctx context.Context, sc model.Scope, input report.UploadInput) (report.UploadOutput, error) {
	if !capabilityFor(sc).canUpload {
		return report.UploadOutput{}, report.ErrActionNotAllowed
	}
	if strings.TrimSpace(input.PatientID) == "" {
		return report.UploadOutput{}, report.ErrPatientRequired
	}
	if input.Reader == nil || strings.TrimSpace(input.FileName) == "" {
		return report.UploadOutput{}, report.ErrFileRequired
	}
	if !report.IsDepartment(input.Department) {
		return report.UploadOutput{}, report.ErrInvalidDepartment
	}
	if input.SubDepartment != "" && !report.IsSubBucket(input.Department, input.SubDepartment) {
		return report.UploadOutput{}, report.ErrInvalidDepartment
	}

	path, err := uc.repo.PutObject(ctx, repository.PutObjectOptions{
		Path:          input.PatientID + "/" + input.FileName,
		Reader:        input.Reader,
		Size:          input.Size,
		ContentType:   input.ContentType,
		Department:    input.Department,
		SubDepartment: input.SubDepartment,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.UploadReport: PutObject failed: %v", err)
		return report.UploadOutput{}, report.ErrBackendError
	}

	uc.publishEvent(ctx, sc, eventActionUpload, input.PatientID, input.FileName)
	return report.UploadOutput{Path: path}, nil
}
