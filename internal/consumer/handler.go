package consumer

import (
	"context"
	"fmt"

	reminderConsumer "portal-srv/internal/appointment/delivery/rabbitmq/consumer"
	patientMongo "portal-srv/internal/patient/repository/mongo"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reminderConsumer reminderConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	patientRepo := patientMongo.New(srv.l, srv.mongoDB, srv.encrypter)

	reminderCons, err := reminderConsumer.New(reminderConsumer.Config{
		Logger:        srv.l,
		RabbitConn:    srv.rabbitConn,
		ReminderQueue: srv.rabbitMQConfig.ReminderQueue,
		PatientRepo:   patientRepo,
		Sender:        srv.sender,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder consumer: %w", err)
	}

	srv.l.Infof(ctx, "Appointment reminder domain initialized")

	return &domainConsumers{
		reminderConsumer: reminderCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reminderConsumer.ConsumeReminders(ctx); err != nil {
		return fmt.Errorf("failed to start reminder consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reminderConsumer != nil {
		if err := consumers.reminderConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing reminder consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
