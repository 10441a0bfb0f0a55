package usecase

import (
	"context"
	"errors"
	"testing"

	"portal-srv/internal/model"
	"portal-srv/internal/patient"
	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/hissrv"
	"portal-srv/pkg/log"
)

type fakeRepo struct {
	patients map[string]model.Patient
	family   map[string][]model.FamilyMember

	existsErr error
	getErr    error
	updateErr error
	listErr   error

	updated []repository.UpdatePatientOptions
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		patients: map[string]model.Patient{},
		family:   map[string][]model.FamilyMember{},
	}
}

func (f *fakeRepo) GetPatient(_ context.Context, patientID string) (*model.Patient, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.patients[patientID]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	return &p, nil
}

func (f *fakeRepo) PatientExists(_ context.Context, patientID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.patients[patientID]
	return ok, nil
}

func (f *fakeRepo) UpdatePatient(_ context.Context, opts repository.UpdatePatientOptions) (*model.Patient, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, ok := f.patients[opts.ID]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	if opts.Email != "" {
		p.Email = opts.Email
	}
	if opts.Phone != "" {
		p.Phone = opts.Phone
	}
	if opts.Address != "" {
		p.Address = opts.Address
	}
	f.patients[opts.ID] = p
	f.updated = append(f.updated, opts)
	return &p, nil
}

func (f *fakeRepo) ListFamilyMembers(_ context.Context, patientID string) ([]model.FamilyMember, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.family[patientID], nil
}

type fakeHIS struct {
	exists     map[string]bool
	family     map[string][]hissrv.FamilyMember
	err        error
	existsGets int
}

func (f *fakeHIS) GetPatient(_ context.Context, patientID string) (*hissrv.Patient, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.exists[patientID] {
		return nil, hissrv.ErrPatientNotFound
	}
	return &hissrv.Patient{ID: patientID}, nil
}

func (f *fakeHIS) PatientExists(_ context.Context, patientID string) (bool, error) {
	f.existsGets++
	if f.err != nil {
		return false, f.err
	}
	return f.exists[patientID], nil
}

func (f *fakeHIS) GetFamilyMembers(_ context.Context, patientID string) ([]hissrv.FamilyMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	members, ok := f.family[patientID]
	if !ok {
		return nil, hissrv.ErrPatientNotFound
	}
	return members, nil
}

var (
	scPatient = model.Scope{UserID: "P100", Username: "p100", Role: model.RolePatient}
	scDoctor  = model.Scope{UserID: "D200", Username: "dr.chen", Role: model.RoleDoctor}
)

func newTestUseCase(repo *fakeRepo, his *fakeHIS) patient.UseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	return New(l, repo, his)
}

func TestExists(t *testing.T) {
	ctx := context.Background()

	t.Run("requires patient id", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeHIS{})
		if _, err := uc.Exists(ctx, scDoctor, patient.ExistsInput{}); !errors.Is(err, patient.ErrPatientRequired) {
			t.Fatalf("expected ErrPatientRequired, got %v", err)
		}
	})

	t.Run("local hit skips HIS", func(t *testing.T) {
		repo := newFakeRepo()
		repo.patients["P100"] = model.Patient{ID: "P100"}
		his := &fakeHIS{}
		uc := newTestUseCase(repo, his)

		o, err := uc.Exists(ctx, scDoctor, patient.ExistsInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("Exists: %v", err)
		}
		if !o.Exists || o.Source != patient.SourceLocal {
			t.Fatalf("expected local hit, got %+v", o)
		}
		if his.existsGets != 0 {
			t.Fatalf("HIS consulted on local hit")
		}
	})

	t.Run("local miss falls back to HIS", func(t *testing.T) {
		his := &fakeHIS{exists: map[string]bool{"P999": true}}
		uc := newTestUseCase(newFakeRepo(), his)

		o, err := uc.Exists(ctx, scDoctor, patient.ExistsInput{PatientID: "P999"})
		if err != nil {
			t.Fatalf("Exists: %v", err)
		}
		if !o.Exists || o.Source != patient.SourceHIS {
			t.Fatalf("expected HIS hit, got %+v", o)
		}
	})

	t.Run("HIS outage degrades to local answer", func(t *testing.T) {
		his := &fakeHIS{err: hissrv.ErrUnavailable}
		uc := newTestUseCase(newFakeRepo(), his)

		o, err := uc.Exists(ctx, scDoctor, patient.ExistsInput{PatientID: "P999"})
		if err != nil {
			t.Fatalf("Exists: %v", err)
		}
		if o.Exists {
			t.Fatalf("expected negative answer when both sources miss")
		}
	})

	t.Run("directory failure surfaces", func(t *testing.T) {
		repo := newFakeRepo()
		repo.existsErr = repository.ErrQueryFailed
		uc := newTestUseCase(repo, &fakeHIS{})

		if _, err := uc.Exists(ctx, scDoctor, patient.ExistsInput{PatientID: "P100"}); !errors.Is(err, patient.ErrDirectoryUnavailable) {
			t.Fatalf("expected ErrDirectoryUnavailable, got %v", err)
		}
	})
}

func TestFamily(t *testing.T) {
	ctx := context.Background()

	t.Run("patients see only their own roster", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeHIS{})
		if _, err := uc.Family(ctx, scPatient, patient.FamilyInput{PatientID: "P200"}); !errors.Is(err, patient.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("local roster wins", func(t *testing.T) {
		repo := newFakeRepo()
		repo.family["P100"] = []model.FamilyMember{{PatientID: "P101", Name: "An Tran", Relation: "child"}}
		uc := newTestUseCase(repo, &fakeHIS{})

		o, err := uc.Family(ctx, scPatient, patient.FamilyInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("Family: %v", err)
		}
		if len(o.Members) != 1 || o.Members[0].PatientID != "P101" {
			t.Fatalf("unexpected roster %+v", o.Members)
		}
	})

	t.Run("empty local roster falls back to HIS", func(t *testing.T) {
		his := &fakeHIS{family: map[string][]hissrv.FamilyMember{
			"P100": {{PatientID: "P102", Name: "Binh Tran", Relation: "parent"}},
		}}
		uc := newTestUseCase(newFakeRepo(), his)

		o, err := uc.Family(ctx, scDoctor, patient.FamilyInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("Family: %v", err)
		}
		if len(o.Members) != 1 || o.Members[0].Relation != "parent" {
			t.Fatalf("unexpected roster %+v", o.Members)
		}
	})

	t.Run("HIS outage yields empty roster", func(t *testing.T) {
		his := &fakeHIS{err: hissrv.ErrUnavailable}
		uc := newTestUseCase(newFakeRepo(), his)

		o, err := uc.Family(ctx, scDoctor, patient.FamilyInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("Family: %v", err)
		}
		if len(o.Members) != 0 {
			t.Fatalf("expected empty roster, got %+v", o.Members)
		}
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("patients read only their own profile", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeHIS{})
		if _, err := uc.GetProfile(ctx, scPatient, patient.GetProfileInput{PatientID: "P200"}); !errors.Is(err, patient.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("missing patient maps to not found", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeHIS{})
		if _, err := uc.GetProfile(ctx, scDoctor, patient.GetProfileInput{PatientID: "P404"}); !errors.Is(err, patient.ErrPatientNotFound) {
			t.Fatalf("expected ErrPatientNotFound, got %v", err)
		}
	})

	t.Run("returns profile", func(t *testing.T) {
		repo := newFakeRepo()
		repo.patients["P100"] = model.Patient{ID: "P100", Name: "Tran Van A", Phone: "0901234567"}
		uc := newTestUseCase(repo, &fakeHIS{})

		o, err := uc.GetProfile(ctx, scPatient, patient.GetProfileInput{PatientID: "P100"})
		if err != nil {
			t.Fatalf("GetProfile: %v", err)
		}
		if o.Patient.Phone != "0901234567" {
			t.Fatalf("unexpected profile %+v", o.Patient)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("patients update only their own profile", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeHIS{})
		input := patient.UpdateProfileInput{PatientID: "P200", Phone: "0900000000"}
		if _, err := uc.UpdateProfile(ctx, scPatient, input); !errors.Is(err, patient.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("rejects malformed contact fields", func(t *testing.T) {
		repo := newFakeRepo()
		repo.patients["P100"] = model.Patient{ID: "P100"}
		uc := newTestUseCase(repo, &fakeHIS{})

		input := patient.UpdateProfileInput{PatientID: "P100", Email: "not-an-email"}
		if _, err := uc.UpdateProfile(ctx, scPatient, input); !errors.Is(err, patient.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}

		input = patient.UpdateProfileInput{PatientID: "P100", Phone: "abc"}
		if _, err := uc.UpdateProfile(ctx, scPatient, input); !errors.Is(err, patient.ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone, got %v", err)
		}
		if len(repo.updated) != 0 {
			t.Fatalf("repository called with invalid input")
		}
	})

	t.Run("updates pass through and return fresh profile", func(t *testing.T) {
		repo := newFakeRepo()
		repo.patients["P100"] = model.Patient{ID: "P100", Phone: "0901234567"}
		uc := newTestUseCase(repo, &fakeHIS{})

		o, err := uc.UpdateProfile(ctx, scPatient, patient.UpdateProfileInput{PatientID: "P100", Phone: "0909999999"})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if o.Patient.Phone != "0909999999" {
			t.Fatalf("unexpected profile %+v", o.Patient)
		}
		if len(repo.updated) != 1 || repo.updated[0].Phone != "0909999999" {
			t.Fatalf("repository not called with new phone: %+v", repo.updated)
		}
	})
}
