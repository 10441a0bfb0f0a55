package consumer

import (
	"context"
	"errors"

	patientrepository "portal-srv/internal/patient/repository"
	"portal-srv/pkg/email"
	"portal-srv/pkg/log"
	"portal-srv/pkg/rabbitmq"
)

// Consumer drains the appointment reminder queue and sends reminder emails.
type Consumer interface {
	ConsumeReminders(ctx context.Context) error
	Close() error
}

type Config struct {
	Logger        log.Logger
	RabbitConn    rabbitmq.IRabbitMQ
	ReminderQueue string
	PatientRepo   patientrepository.Repository
	Sender        email.ISender
}

type implConsumer struct {
	l           log.Logger
	conn        rabbitmq.IRabbitMQ
	queue       string
	patientRepo patientrepository.Repository
	sender      email.ISender

	channel rabbitmq.IChannel
}

func New(cfg Config) (Consumer, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.RabbitConn == nil {
		return nil, errors.New("rabbit connection is required")
	}
	if cfg.ReminderQueue == "" {
		return nil, errors.New("reminder queue is required")
	}
	if cfg.PatientRepo == nil {
		return nil, errors.New("patient repository is required")
	}
	if cfg.Sender == nil {
		return nil, errors.New("email sender is required")
	}

	return &implConsumer{
		l:           cfg.Logger,
		conn:        cfg.RabbitConn,
		queue:       cfg.ReminderQueue,
		patientRepo: cfg.PatientRepo,
		sender:      cfg.Sender,
	}, nil
}
