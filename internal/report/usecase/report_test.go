package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"portal-srv/internal/model"
	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
)

var (
	scPatient    = model.Scope{UserID: "P100", Username: "p100", Role: model.RolePatient}
	scDoctor     = model.Scope{UserID: "D1", Username: "drnguyen", Role: model.RoleDoctor}
	scTechnician = model.Scope{UserID: "T1", Username: "tech1", Role: model.RoleTechnician}
)

func TestListReports(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("requires patient id", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		if _, err := uc.ListReports(ctx, scDoctor, report.ListInput{PatientID: "  "}); !errors.Is(err, report.ErrPatientRequired) {
			t.Fatalf("expected ErrPatientRequired, got %v", err)
		}
	})

	t.Run("patient cannot list another namespace", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		if _, err := uc.ListReports(ctx, scPatient, report.ListInput{PatientID: "P200"}); !errors.Is(err, report.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("backend failure surfaces as unavailable", func(t *testing.T) {
		storage := newFakeStorage()
		storage.listErr = repository.ErrListFailed
		uc, _, _ := newTestUseCase(storage, now)
		if _, err := uc.ListReports(ctx, scDoctor, report.ListInput{PatientID: "P100"}); !errors.Is(err, report.ErrBackendUnavailable) {
			t.Fatalf("expected ErrBackendUnavailable, got %v", err)
		}
	})

	t.Run("one record per object with fresh expiry", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab, SubDepartment: "Hematology"})
		storage.add(repository.Object{Name: "ecg.pdf", PatientID: "P100", Department: report.DepartmentECG})
		uc, _, _ := newTestUseCase(storage, now)

		out, err := uc.ListReports(ctx, scPatient, report.ListInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		if len(out.Reports) != 2 {
			t.Fatalf("got %d records, want 2", len(out.Reports))
		}
		for _, r := range out.Reports {
			if r.URL == "" {
				t.Errorf("record %s has no URL", r.Name)
			}
			if !r.ExpiryTime.After(now) {
				t.Errorf("record %s expiry %v not in the future", r.Name, r.ExpiryTime)
			}
		}
	})

	t.Run("category filter applied server side", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab, SubDepartment: "Hematology"})
		storage.add(repository.Object{Name: "ecg.pdf", PatientID: "P100", Department: report.DepartmentECG})
		uc, _, _ := newTestUseCase(storage, now)

		out, err := uc.ListReports(ctx, scDoctor, report.ListInput{
			PatientID:   "P100",
			Category:    report.DepartmentLab,
			SubCategory: "Biochemistry",
		})
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		if len(out.Reports) != 0 {
			t.Fatalf("expected empty result for unmatched sub-bucket, got %d", len(out.Reports))
		}
	})

	t.Run("sort by upload date", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "old.pdf", PatientID: "P100", Department: report.DepartmentECG, UploadDate: now.AddDate(0, 0, -2)})
		storage.add(repository.Object{Name: "new.pdf", PatientID: "P100", Department: report.DepartmentECG, UploadDate: now})
		uc, _, _ := newTestUseCase(storage, now)

		out, err := uc.ListReports(ctx, scDoctor, report.ListInput{PatientID: "P100", Sort: "desc"})
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		if out.Reports[0].Name != "new.pdf" {
			t.Errorf("expected new.pdf first, got %s", out.Reports[0].Name)
		}
	})
}

func TestViewReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("stale record renews exactly once with reconstructed path", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab, SubDepartment: "Hematology"})
		uc, _, producer := newTestUseCase(storage, now)

		out, err := uc.ViewReport(ctx, scPatient, report.ActionInput{PatientID: "P100", Name: "cbc.pdf"})
		if err != nil {
			t.Fatalf("ViewReport: %v", err)
		}
		if storage.mintCalls != 1 {
			t.Fatalf("expected exactly one renewal call, got %d", storage.mintCalls)
		}
		if !strings.Contains(out.URL, "P100/cbc.pdf") {
			t.Errorf("URL %q does not reference the object path", out.URL)
		}
		if want := now.Add(time.Hour); !out.ExpiresAt.Equal(want) {
			t.Errorf("expiry = %v, want %v", out.ExpiresAt, want)
		}
		if len(producer.published) != 1 {
			t.Errorf("expected one published event, got %d", len(producer.published))
		}
	})

	t.Run("missing report", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		if _, err := uc.ViewReport(ctx, scDoctor, report.ActionInput{PatientID: "P100", Name: "none.pdf"}); !errors.Is(err, report.ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestDownloadReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	storage := newFakeStorage()
	storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
	uc, _, _ := newTestUseCase(storage, now)

	out, err := uc.DownloadReport(ctx, scPatient, report.ActionInput{PatientID: "P100", Name: "cbc.pdf"})
	if err != nil {
		t.Fatalf("DownloadReport: %v", err)
	}
	if out.FileName != "cbc.pdf" {
		t.Errorf("file name = %q, want cbc.pdf", out.FileName)
	}
	if out.URL == "" {
		t.Error("expected a URL")
	}
}

func TestShareReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("renewal failure aborts share", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		storage.mintErr = repository.ErrMintFailed
		uc, _, producer := newTestUseCase(storage, now)

		if _, err := uc.ShareReport(ctx, scPatient, report.ActionInput{PatientID: "P100", Name: "cbc.pdf"}); !errors.Is(err, report.ErrRenewalFailed) {
			t.Fatalf("expected ErrRenewalFailed, got %v", err)
		}
		if len(producer.published) != 0 {
			t.Error("no event should be published on failure")
		}
	})
}

func TestArchiveReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("only doctors may archive", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		for _, sc := range []model.Scope{scPatient, scTechnician} {
			if err := uc.ArchiveReport(ctx, sc, report.ArchiveInput{PatientID: "P100", Name: "cbc.pdf"}); !errors.Is(err, report.ErrActionNotAllowed) {
				t.Errorf("role %s: expected ErrActionNotAllowed, got %v", sc.Role, err)
			}
		}
	})

	t.Run("archive retags and leaves default view", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		uc, auditUC, _ := newTestUseCase(storage, now)

		if err := uc.ArchiveReport(ctx, scDoctor, report.ArchiveInput{PatientID: "P100", Name: "cbc.pdf"}); err != nil {
			t.Fatalf("ArchiveReport: %v", err)
		}
		if storage.retagged["P100/cbc.pdf"] != report.DepartmentArchived {
			t.Error("object was not retagged to ARCHIVED")
		}

		// still enumerable, excluded from the default view
		out, err := uc.ListReports(ctx, scDoctor, report.ListInput{PatientID: "P100", Category: report.CategoryAll})
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		for _, r := range out.Reports {
			if r.Name == "cbc.pdf" {
				t.Error("archived report still visible in default view")
			}
		}
		archived, err := uc.ListReports(ctx, scDoctor, report.ListInput{PatientID: "P100", Category: report.DepartmentArchived})
		if err != nil {
			t.Fatalf("ListReports archived: %v", err)
		}
		if len(archived.Reports) != 1 {
			t.Errorf("archived report not enumerable, got %d records", len(archived.Reports))
		}

		if len(auditUC.created) != 1 || auditUC.created[0].Action != model.AuditActionArchive {
			t.Errorf("expected one ARCHIVE audit entry, got %+v", auditUC.created)
		}
	})

	t.Run("backend failure leaves state unchanged", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		storage.retagErr = repository.ErrMutationFailed
		uc, auditUC, _ := newTestUseCase(storage, now)

		if err := uc.ArchiveReport(ctx, scDoctor, report.ArchiveInput{PatientID: "P100", Name: "cbc.pdf"}); !errors.Is(err, report.ErrBackendError) {
			t.Fatalf("expected ErrBackendError, got %v", err)
		}
		if len(auditUC.created) != 0 {
			t.Error("no audit entry expected on failure")
		}
	})
}

func TestDeleteReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("only technicians may delete", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		for _, sc := range []model.Scope{scPatient, scDoctor} {
			if err := uc.DeleteReport(ctx, sc, report.DeleteInput{PatientID: "P100", Name: "cbc.pdf", Reason: "duplicate"}); !errors.Is(err, report.ErrActionNotAllowed) {
				t.Errorf("role %s: expected ErrActionNotAllowed, got %v", sc.Role, err)
			}
		}
	})

	t.Run("whitespace reason rejected before any backend call", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		uc, _, _ := newTestUseCase(storage, now)

		for _, reason := range []string{"", "   ", "\t\n"} {
			if err := uc.DeleteReport(ctx, scTechnician, report.DeleteInput{PatientID: "P100", Name: "cbc.pdf", Reason: reason}); !errors.Is(err, report.ErrMissingReason) {
				t.Fatalf("reason %q: expected ErrMissingReason, got %v", reason, err)
			}
		}
		if storage.mintCalls != 0 || len(storage.removed) != 0 {
			t.Error("backend was called despite missing reason")
		}
	})

	t.Run("delete removes and audits with reason", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		uc, auditUC, producer := newTestUseCase(storage, now)

		if err := uc.DeleteReport(ctx, scTechnician, report.DeleteInput{PatientID: "P100", Name: "cbc.pdf", Reason: "mislabeled sample"}); err != nil {
			t.Fatalf("DeleteReport: %v", err)
		}
		if !storage.removed["P100/cbc.pdf"] {
			t.Error("object was not removed")
		}

		// removal is final for the session: a fresh listing no longer has it
		out, err := uc.ListReports(ctx, scTechnician, report.ListInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("ListReports: %v", err)
		}
		for _, r := range out.Reports {
			if r.Name == "cbc.pdf" {
				t.Error("deleted report still listed")
			}
		}

		if len(auditUC.created) != 1 {
			t.Fatalf("expected one audit entry, got %d", len(auditUC.created))
		}
		entry := auditUC.created[0]
		if entry.Action != model.AuditActionDelete || entry.Reason != "mislabeled sample" {
			t.Errorf("unexpected audit entry %+v", entry)
		}

		var event actionEvent
		if err := json.Unmarshal(producer.published[len(producer.published)-1], &event); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if event.Action != "DELETE" || event.ActorID != "T1" {
			t.Errorf("unexpected event %+v", event)
		}
	})
}

func TestRegenerateURL(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("mints with the renewal window", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100", Department: report.DepartmentLab})
		uc, _, _ := newTestUseCase(storage, now)

		out, err := uc.RegenerateURL(ctx, scPatient, report.RegenerateInput{FilePath: "P100/cbc.pdf"})
		if err != nil {
			t.Fatalf("RegenerateURL: %v", err)
		}
		if out.SignedURL == "" {
			t.Error("expected a signed URL")
		}
		if storage.lastMintTTL != time.Hour {
			t.Errorf("mint TTL = %v, want %v", storage.lastMintTTL, time.Hour)
		}
	})

	t.Run("patient restricted to own namespace", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		if _, err := uc.RegenerateURL(ctx, scPatient, report.RegenerateInput{FilePath: "P200/cbc.pdf"}); !errors.Is(err, report.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})
}

func TestUploadReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("patients cannot upload", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		if _, err := uc.UploadReport(ctx, scPatient, report.UploadInput{PatientID: "P100", FileName: "cbc.pdf"}); !errors.Is(err, report.ErrActionNotAllowed) {
			t.Fatalf("expected ErrActionNotAllowed, got %v", err)
		}
	})

	t.Run("invalid department rejected", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		_, err := uc.UploadReport(ctx, scDoctor, report.UploadInput{
			PatientID:  "P100",
			FileName:   "cbc.pdf",
			Reader:     strings.NewReader("data"),
			Department: "CARDIO",
		})
		if !errors.Is(err, report.ErrInvalidDepartment) {
			t.Fatalf("expected ErrInvalidDepartment, got %v", err)
		}
	})

	t.Run("valid upload returns path", func(t *testing.T) {
		uc, _, _ := newTestUseCase(newFakeStorage(), now)
		out, err := uc.UploadReport(ctx, scDoctor, report.UploadInput{
			PatientID:     "P100",
			FileName:      "cbc.pdf",
			Reader:        strings.NewReader("data"),
			Size:          4,
			Department:    report.DepartmentLab,
			SubDepartment: "Hematology",
		})
		if err != nil {
			t.Fatalf("UploadReport: %v", err)
		}
		if out.Path != "P100/cbc.pdf" {
			t.Errorf("path = %q, want P100/cbc.pdf", out.Path)
		}
	})
}
