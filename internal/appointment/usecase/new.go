package usecase

import (
	"time"

	"portal-srv/internal/appointment"
	"portal-srv/internal/appointment/repository"
	"portal-srv/pkg/log"
	"portal-srv/pkg/rabbitmq"
)

const defaultReminderQueue = "portal.appointment-reminders"

// Config carries the reminder queue name.
type Config struct {
	ReminderQueue string
}

type implUseCase struct {
	l      log.Logger
	repo   repository.Repository
	rmq    rabbitmq.IRabbitMQ
	config Config
	clock  func() time.Time
}

func New(l log.Logger, repo repository.Repository, rmq rabbitmq.IRabbitMQ, config Config) appointment.UseCase {
	if config.ReminderQueue == "" {
		config.ReminderQueue = defaultReminderQueue
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		rmq:    rmq,
		config: config,
		clock:  time.Now,
	}
}
