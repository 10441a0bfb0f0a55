package usecase

import (
	"context"
	"errors"
	"strings"

	"portal-srv/internal/audit"
	"portal-srv/internal/model"
	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
)

// canAccess gates namespace access: patients only reach their own
// reports, staff roles reach any patient.
func (uc *implUseCase) canAccess(sc model.Scope, patientID string) bool {
	if sc.Role == model.RolePatient {
		return sc.UserID == patientID
	}
	return true
}

func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListInput) (report.ListOutput, error) {
	if strings.TrimSpace(input.PatientID) == "" {
		return report.ListOutput{}, report.ErrPatientRequired
	}
	if !uc.canAccess(sc, input.PatientID) {
		return report.ListOutput{}, report.ErrActionNotAllowed
	}

	objects, err := uc.repo.ListObjects(ctx, input.PatientID)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: ListObjects failed: %v", err)
		return report.ListOutput{}, report.ErrBackendUnavailable
	}

	now := uc.clock()
	records := make([]report.Record, 0, len(objects))
	for _, obj := range objects {
		path := obj.PatientID + "/" + obj.Name
		url, _, mintErr := uc.repo.MintURL(ctx, path, uc.config.MintTTL)
		if mintErr != nil {
			// one bad object must not abort the whole listing
			uc.l.Warnf(ctx, "report.usecase.ListReports: skipping %s, mint failed: %v", path, mintErr)
			continue
		}
		records = append(records, report.Record{
			Name:          obj.Name,
			URL:           url,
			ExpiryTime:    now.Add(uc.config.MintTTL),
			PatientID:     obj.PatientID,
			SizeKB:        obj.SizeKB,
			UploadDate:    obj.UploadDate,
			Department:    obj.Department,
			SubDepartment: obj.SubDepartment,
		})
	}

	if input.Category != "" {
		records = report.Classify(records, input.Category, input.SubCategory)
	}
	switch input.Sort {
	case "asc":
		records = report.SortByUploadDate(records, false)
	case "desc":
		records = report.SortByUploadDate(records, true)
	}

	return report.ListOutput{Reports: records}, nil
}

func (uc *implUseCase) RegenerateURL(ctx context.Context, sc model.Scope, input report.RegenerateInput) (report.RegenerateOutput, error) {
	filePath := strings.TrimSpace(input.FilePath)
	if filePath == "" {
		return report.RegenerateOutput{}, report.ErrReportNotFound
	}
	patientID, _, ok := strings.Cut(filePath, "/")
	if !ok || !uc.canAccess(sc, patientID) {
		return report.RegenerateOutput{}, report.ErrActionNotAllowed
	}

	url, _, err := uc.repo.MintURL(ctx, filePath, uc.config.RenewalTTL)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return report.RegenerateOutput{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.RegenerateURL: mint failed for %s: %v", filePath, err)
		return report.RegenerateOutput{}, report.ErrRenewalFailed
	}

	return report.RegenerateOutput{SignedURL: url}, nil
}

// getRecord loads a single record for an action target. The record
// starts with a zero expiry so the guard renews before first use.
func (uc *implUseCase) getRecord(ctx context.Context, sc model.Scope, patientID, name string) (report.Record, error) {
	if strings.TrimSpace(patientID) == "" {
		return report.Record{}, report.ErrPatientRequired
	}
	if !uc.canAccess(sc, patientID) {
		return report.Record{}, report.ErrActionNotAllowed
	}

	obj, err := uc.repo.StatObject(ctx, patientID+"/"+name)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return report.Record{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.getRecord: StatObject failed: %v", err)
		return report.Record{}, report.ErrBackendUnavailable
	}

	return report.Record{
		Name:          obj.Name,
		PatientID:     obj.PatientID,
		SizeKB:        obj.SizeKB,
		UploadDate:    obj.UploadDate,
		Department:    obj.Department,
		SubDepartment: obj.SubDepartment,
	}, nil
}

func (uc *implUseCase) ViewReport(ctx context.Context, sc model.Scope, input report.ActionInput) (report.ViewOutput, error) {
	record, err := uc.getRecord(ctx, sc, input.PatientID, input.Name)
	if err != nil {
		return report.ViewOutput{}, err
	}

	if err := uc.ensureFresh(ctx, &record, uc.clock()); err != nil {
		return report.ViewOutput{}, err
	}

	uc.publishEvent(ctx, sc, eventActionView, record.PatientID, record.Name)
	return report.ViewOutput{URL: record.URL, ExpiresAt: record.ExpiryTime}, nil
}

func (uc *implUseCase) DownloadReport(ctx context.Context, sc model.Scope, input report.ActionInput) (report.DownloadOutput, error) {
	record, err := uc.getRecord(ctx, sc, input.PatientID, input.Name)
	if err != nil {
		return report.DownloadOutput{}, err
	}

	if err := uc.ensureFresh(ctx, &record, uc.clock()); err != nil {
		return report.DownloadOutput{}, err
	}

	uc.publishEvent(ctx, sc, eventActionDownload, record.PatientID, record.Name)
	return report.DownloadOutput{
		URL:       record.URL,
		FileName:  record.Name,
		ExpiresAt: record.ExpiryTime,
	}, nil
}

func (uc *implUseCase) ShareReport(ctx context.Context, sc model.Scope, input report.ActionInput) (report.ShareOutput, error) {
	record, err := uc.getRecord(ctx, sc, input.PatientID, input.Name)
	if err != nil {
		return report.ShareOutput{}, err
	}

	if err := uc.ensureFresh(ctx, &record, uc.clock()); err != nil {
		return report.ShareOutput{}, err
	}

	uc.publishEvent(ctx, sc, eventActionShare, record.PatientID, record.Name)
	return report.ShareOutput{URL: record.URL, ExpiresAt: record.ExpiryTime}, nil
}

func (uc *implUseCase) ArchiveReport(ctx context.Context, sc model.Scope, input report.ArchiveInput) error {
	if !capabilityFor(sc).canArchive {
		return report.ErrActionNotAllowed
	}

	record, err := uc.getRecord(ctx, sc, input.PatientID, input.Name)
	if err != nil {
		return err
	}

	if err := uc.repo.RetagDepartment(ctx, record.Path(), report.DepartmentArchived); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.ArchiveReport: RetagDepartment failed: %v", err)
		return report.ErrBackendError
	}

	if err := uc.auditUC.Create(ctx, sc, audit.CreateInput{
		ReportName: record.Name,
		PatientID:  record.PatientID,
		Action:     model.AuditActionArchive,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.ArchiveReport: audit write failed: %v", err)
	}

	uc.publishEvent(ctx, sc, eventActionArchive, record.PatientID, record.Name)
	return nil
}

func (uc *implUseCase) DeleteReport(ctx context.Context, sc model.Scope, input report.DeleteInput) error {
	if !capabilityFor(sc).canDelete {
		return report.ErrActionNotAllowed
	}

	// rejected before any backend call
	if strings.TrimSpace(input.Reason) == "" {
		return report.ErrMissingReason
	}

	record, err := uc.getRecord(ctx, sc, input.PatientID, input.Name)
	if err != nil {
		return err
	}

	if err := uc.repo.RemoveObject(ctx, record.Path()); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.DeleteReport: RemoveObject failed: %v", err)
		return report.ErrBackendError
	}

	if err := uc.auditUC.Create(ctx, sc, audit.CreateInput{
		ReportName: record.Name,
		PatientID:  record.PatientID,
		Action:     model.AuditActionDelete,
		Reason:     input.Reason,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.DeleteReport: audit write failed: %v", err)
	}

	uc.publishEvent(ctx, sc, eventActionDelete, record.PatientID, record.Name)
	return nil
}
