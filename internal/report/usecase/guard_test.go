package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"portal-srv/internal/audit"
	"portal-srv/internal/model"
	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
	"portal-srv/pkg/log"
)

// fakeStorage implements repository.StorageRepository with canned data
// and call counters.
type fakeStorage struct {
	objects map[string]repository.Object // keyed by path
	urls    map[string]string

	mintCalls   int
	mintErr     error
	listErr     error
	retagErr    error
	removeErr   error
	retagged    map[string]string
	removed     map[string]bool
	lastMintTTL time.Duration
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects:  map[string]repository.Object{},
		urls:     map[string]string{},
		retagged: map[string]string{},
		removed:  map[string]bool{},
	}
}

func (f *fakeStorage) add(obj repository.Object) {
	path := obj.PatientID + "/" + obj.Name
	f.objects[path] = obj
	f.urls[path] = "https://storage.local/" + path + "?sig=1"
}

func (f *fakeStorage) ListObjects(ctx context.Context, patientID string) ([]repository.Object, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []repository.Object
	for _, obj := range f.objects {
		if obj.PatientID == patientID && !f.removed[obj.PatientID+"/"+obj.Name] {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *fakeStorage) StatObject(ctx context.Context, path string) (repository.Object, error) {
	if f.removed[path] {
		return repository.Object{}, repository.ErrObjectNotFound
	}
	obj, ok := f.objects[path]
	if !ok {
		return repository.Object{}, repository.ErrObjectNotFound
	}
	return obj, nil
}

func (f *fakeStorage) MintURL(ctx context.Context, path string, ttl time.Duration) (string, time.Time, error) {
	f.mintCalls++
	f.lastMintTTL = ttl
	if f.mintErr != nil {
		return "", time.Time{}, f.mintErr
	}
	url, ok := f.urls[path]
	if !ok {
		return "", time.Time{}, repository.ErrObjectNotFound
	}
	return fmt.Sprintf("%s&mint=%d", url, f.mintCalls), time.Now().Add(ttl), nil
}

func (f *fakeStorage) RetagDepartment(ctx context.Context, path, department string) error {
	if f.retagErr != nil {
		return f.retagErr
	}
	if _, ok := f.objects[path]; !ok {
		return repository.ErrObjectNotFound
	}
	f.retagged[path] = department
	obj := f.objects[path]
	obj.Department = department
	f.objects[path] = obj
	return nil
}

func (f *fakeStorage) RemoveObject(ctx context.Context, path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	if _, ok := f.objects[path]; !ok || f.removed[path] {
		return repository.ErrObjectNotFound
	}
	f.removed[path] = true
	return nil
}

func (f *fakeStorage) PutObject(ctx context.Context, opts repository.PutObjectOptions) (string, error) {
	return opts.Path, nil
}

type fakeAudit struct {
	created []audit.CreateInput
	err     error
}

func (f *fakeAudit) Create(ctx context.Context, sc model.Scope, input audit.CreateInput) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, input)
	return nil
}

func (f *fakeAudit) List(ctx context.Context, sc model.Scope, input audit.ListInput) (audit.ListOutput, error) {
	return audit.ListOutput{}, nil
}

type fakeProducer struct {
	published [][]byte
	keys      [][]byte
}

func (f *fakeProducer) Publish(key, value []byte) error {
	f.keys = append(f.keys, key)
	f.published = append(f.published, value)
	return nil
}

func (f *fakeProducer) Close() error { return nil }

func (f *fakeProducer) HealthCheck() error { return nil }

func newTestUseCase(storage *fakeStorage, now time.Time) (*implUseCase, *fakeAudit, *fakeProducer) {
	auditUC := &fakeAudit{}
	producer := &fakeProducer{}
	uc := New(storage, auditUC, producer, log.Init(log.ZapConfig{Level: "error"}), Config{
		MintTTL:    60 * time.Second,
		RenewalTTL: time.Hour,
	}).(*implUseCase)
	uc.clock = func() time.Time { return now }
	return uc, auditUC, producer
}

func TestEnsureFresh(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("fresh record is never renewed", func(t *testing.T) {
		storage := newFakeStorage()
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{
			Name:       "cbc.pdf",
			PatientID:  "P100",
			URL:        "https://storage.local/P100/cbc.pdf?sig=old",
			ExpiryTime: now.Add(30 * time.Second),
		}
		before := r

		if err := uc.ensureFresh(ctx, &r, now); err != nil {
			t.Fatalf("ensureFresh: %v", err)
		}
		if storage.mintCalls != 0 {
			t.Errorf("expected zero renewal calls, got %d", storage.mintCalls)
		}
		if r != before {
			t.Error("fresh record was mutated")
		}
	})

	t.Run("expiry boundary is still fresh", func(t *testing.T) {
		storage := newFakeStorage()
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{Name: "cbc.pdf", PatientID: "P100", ExpiryTime: now}
		if err := uc.ensureFresh(ctx, &r, now); err != nil {
			t.Fatalf("ensureFresh: %v", err)
		}
		if storage.mintCalls != 0 {
			t.Errorf("expected zero renewal calls at the boundary, got %d", storage.mintCalls)
		}
	})

	t.Run("stale record triggers exactly one renewal", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100"})
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{
			Name:       "cbc.pdf",
			PatientID:  "P100",
			URL:        "https://storage.local/P100/cbc.pdf?sig=old",
			ExpiryTime: now.Add(-time.Second),
		}

		if err := uc.ensureFresh(ctx, &r, now); err != nil {
			t.Fatalf("ensureFresh: %v", err)
		}
		if storage.mintCalls != 1 {
			t.Fatalf("expected exactly one renewal call, got %d", storage.mintCalls)
		}
		if r.URL == "https://storage.local/P100/cbc.pdf?sig=old" {
			t.Error("URL was not replaced")
		}
		if want := now.Add(time.Hour); !r.ExpiryTime.Equal(want) {
			t.Errorf("expiry = %v, want %v", r.ExpiryTime, want)
		}
	})

	t.Run("fresh then stale over time renews once", func(t *testing.T) {
		storage := newFakeStorage()
		storage.add(repository.Object{Name: "cbc.pdf", PatientID: "P100"})
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{Name: "cbc.pdf", PatientID: "P100", ExpiryTime: now.Add(time.Minute)}

		if err := uc.ensureFresh(ctx, &r, now); err != nil {
			t.Fatalf("ensureFresh at t1: %v", err)
		}
		if storage.mintCalls != 0 {
			t.Fatalf("expected no call at t1, got %d", storage.mintCalls)
		}

		t2 := now.Add(2 * time.Minute)
		if err := uc.ensureFresh(ctx, &r, t2); err != nil {
			t.Fatalf("ensureFresh at t2: %v", err)
		}
		if storage.mintCalls != 1 {
			t.Errorf("expected one call at t2, got %d", storage.mintCalls)
		}
	})

	t.Run("renewal failure leaves record untouched", func(t *testing.T) {
		storage := newFakeStorage()
		storage.mintErr = repository.ErrMintFailed
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{
			Name:       "cbc.pdf",
			PatientID:  "P100",
			URL:        "https://storage.local/P100/cbc.pdf?sig=old",
			ExpiryTime: now.Add(-time.Second),
		}
		before := r

		err := uc.ensureFresh(ctx, &r, now)
		if !errors.Is(err, report.ErrRenewalFailed) {
			t.Fatalf("expected ErrRenewalFailed, got %v", err)
		}
		if r != before {
			t.Error("record mutated despite renewal failure")
		}
	})

	t.Run("missing object maps to not found", func(t *testing.T) {
		storage := newFakeStorage()
		uc, _, _ := newTestUseCase(storage, now)

		r := report.Record{Name: "gone.pdf", PatientID: "P100", ExpiryTime: now.Add(-time.Second)}
		if err := uc.ensureFresh(ctx, &r, now); !errors.Is(err, report.ErrReportNotFound) {
			t.Fatalf("expected ErrReportNotFound, got %v", err)
		}
	})
}
