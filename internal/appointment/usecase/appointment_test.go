package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"portal-srv/internal/appointment"
	"portal-srv/internal/appointment/repository"
	"portal-srv/internal/model"
	"portal-srv/pkg/log"
	"portal-srv/pkg/rabbitmq"
)

type fakeRepo struct {
	appointments map[string]model.Appointment

	createErr error
	listErr   error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{appointments: map[string]model.Appointment{}}
}

func (f *fakeRepo) CreateAppointment(_ context.Context, opts repository.CreateAppointmentOptions) (*model.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a := model.Appointment{
		ID:          opts.ID,
		PatientID:   opts.PatientID,
		DoctorName:  opts.DoctorName,
		Department:  opts.Department,
		ScheduledAt: opts.ScheduledAt,
		Status:      model.AppointmentStatusBooked,
		Note:        opts.Note,
	}
	f.appointments[a.ID] = a
	return &a, nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*model.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repository.ErrAppointmentNotFound
	}
	return &a, nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, opts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Appointment
	for _, a := range f.appointments {
		if opts.PatientID != "" && a.PatientID != opts.PatientID {
			continue
		}
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	a, ok := f.appointments[id]
	if !ok {
		return repository.ErrAppointmentNotFound
	}
	a.Status = status
	f.appointments[id] = a
	return nil
}

type fakeChannel struct {
	declared  []string
	published []rabbitmq.PublishArgs

	publishErr error
}

func (f *fakeChannel) QueueDeclare(queue rabbitmq.QueueArgs) (amqp.Queue, error) {
	f.declared = append(f.declared, queue.Name)
	return amqp.Queue{Name: queue.Name}, nil
}

func (f *fakeChannel) Publish(_ context.Context, publish rabbitmq.PublishArgs) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publish)
	return nil
}

func (f *fakeChannel) Consume(rabbitmq.ConsumeArgs) (<-chan amqp.Delivery, error) {
	return nil, nil
}

func (f *fakeChannel) Close() error { return nil }

type fakeRabbitMQ struct {
	ch         *fakeChannel
	channelErr error
}

func (f *fakeRabbitMQ) Close() {}

func (f *fakeRabbitMQ) IsReady() bool { return true }

func (f *fakeRabbitMQ) Channel() (rabbitmq.IChannel, error) {
	if f.channelErr != nil {
		return nil, f.channelErr
	}
	return f.ch, nil
}

var (
	testNow     = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	scPatient   = model.Scope{UserID: "P100", Username: "p100", Role: model.RolePatient}
	scDoctor    = model.Scope{UserID: "D200", Username: "dr.chen", Role: model.RoleDoctor}
	validSlot   = testNow.Add(48 * time.Hour)
	validInput  = appointment.BookInput{PatientID: "P100", DoctorName: "Dr. Chen", Department: "SCAN", ScheduledAt: validSlot}
	reminderFor = func(t *testing.T, ch *fakeChannel) reminderMessage {
		t.Helper()
		if len(ch.published) != 1 {
			t.Fatalf("expected one reminder, got %d", len(ch.published))
		}
		var msg reminderMessage
		if err := json.Unmarshal(ch.published[0].Body, &msg); err != nil {
			t.Fatalf("unmarshal reminder: %v", err)
		}
		return msg
	}
)

func newTestUseCase(repo *fakeRepo, rmq *fakeRabbitMQ) appointment.UseCase {
	l := log.Init(log.ZapConfig{Level: "error"})
	uc := New(l, repo, rmq, Config{ReminderQueue: "portal.appointment-reminders"}).(*implUseCase)
	uc.clock = func() time.Time { return testNow }
	return uc
}

func TestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a future slot", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeRabbitMQ{ch: &fakeChannel{}})
		input := validInput
		input.ScheduledAt = testNow.Add(-time.Hour)
		if _, err := uc.Book(ctx, scPatient, input); !errors.Is(err, appointment.ErrInvalidSchedule) {
			t.Fatalf("expected ErrInvalidSchedule, got %v", err)
		}
	})

	t.Run("patients book only for themselves", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeRabbitMQ{ch: &fakeChannel{}})
		input := validInput
		input.PatientID = "P999"
		if _, err := uc.Book(ctx, scPatient, input); !errors.Is(err, appointment.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("booking stores and enqueues a reminder", func(t *testing.T) {
		repo := newFakeRepo()
		ch := &fakeChannel{}
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: ch})

		o, err := uc.Book(ctx, scPatient, validInput)
		if err != nil {
			t.Fatalf("Book: %v", err)
		}
		if o.Appointment.Status != model.AppointmentStatusBooked {
			t.Fatalf("unexpected status %q", o.Appointment.Status)
		}
		if len(repo.appointments) != 1 {
			t.Fatalf("appointment not stored")
		}

		msg := reminderFor(t, ch)
		if msg.AppointmentID != o.Appointment.ID || msg.PatientID != "P100" {
			t.Fatalf("unexpected reminder %+v", msg)
		}
		if len(ch.declared) != 1 || ch.declared[0] != "portal.appointment-reminders" {
			t.Fatalf("queue not declared: %v", ch.declared)
		}
	})

	t.Run("queue failure does not fail the booking", func(t *testing.T) {
		repo := newFakeRepo()
		ch := &fakeChannel{publishErr: errors.New("broker down")}
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: ch})

		if _, err := uc.Book(ctx, scDoctor, validInput); err != nil {
			t.Fatalf("Book: %v", err)
		}
		if len(repo.appointments) != 1 {
			t.Fatalf("appointment not stored despite queue failure")
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = repository.ErrMutationFailed
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: &fakeChannel{}})

		if _, err := uc.Book(ctx, scDoctor, validInput); !errors.Is(err, appointment.ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("patients list only their own", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeRabbitMQ{ch: &fakeChannel{}})
		if _, err := uc.List(ctx, scPatient, appointment.ListInput{PatientID: "P999"}); !errors.Is(err, appointment.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("status filter applies", func(t *testing.T) {
		repo := newFakeRepo()
		repo.appointments["a1"] = model.Appointment{ID: "a1", PatientID: "P100", Status: model.AppointmentStatusBooked}
		repo.appointments["a2"] = model.Appointment{ID: "a2", PatientID: "P100", Status: model.AppointmentStatusCancelled}
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: &fakeChannel{}})

		o, err := uc.List(ctx, scPatient, appointment.ListInput{PatientID: "P100", Status: model.AppointmentStatusBooked})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(o.Appointments) != 1 || o.Appointments[0].ID != "a1" {
			t.Fatalf("unexpected listing %+v", o.Appointments)
		}
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown appointment maps to not found", func(t *testing.T) {
		uc := newTestUseCase(newFakeRepo(), &fakeRabbitMQ{ch: &fakeChannel{}})
		if err := uc.Cancel(ctx, scDoctor, appointment.CancelInput{AppointmentID: "missing"}); !errors.Is(err, appointment.ErrAppointmentNotFound) {
			t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
		}
	})

	t.Run("patients cancel only their own", func(t *testing.T) {
		repo := newFakeRepo()
		repo.appointments["a1"] = model.Appointment{ID: "a1", PatientID: "P999", Status: model.AppointmentStatusBooked}
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: &fakeChannel{}})

		if err := uc.Cancel(ctx, scPatient, appointment.CancelInput{AppointmentID: "a1"}); !errors.Is(err, appointment.ErrNotPermitted) {
			t.Fatalf("expected ErrNotPermitted, got %v", err)
		}
	})

	t.Run("cancel is idempotent-guarded", func(t *testing.T) {
		repo := newFakeRepo()
		repo.appointments["a1"] = model.Appointment{ID: "a1", PatientID: "P100", Status: model.AppointmentStatusBooked}
		uc := newTestUseCase(repo, &fakeRabbitMQ{ch: &fakeChannel{}})

		if err := uc.Cancel(ctx, scPatient, appointment.CancelInput{AppointmentID: "a1"}); err != nil {
			t.Fatalf("Cancel: %v", err)
		}
		if repo.appointments["a1"].Status != model.AppointmentStatusCancelled {
			t.Fatalf("status not updated: %+v", repo.appointments["a1"])
		}
		if err := uc.Cancel(ctx, scPatient, appointment.CancelInput{AppointmentID: "a1"}); !errors.Is(err, appointment.ErrAlreadyCancelled) {
			t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
		}
	})
}
