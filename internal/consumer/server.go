package consumer

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"portal-srv/config"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/email"
	"portal-srv/pkg/encrypter"
	"portal-srv/pkg/log"
	"portal-srv/pkg/rabbitmq"
)

// ConsumerServer is the appointment reminder consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l              log.Logger
	rabbitMQConfig config.RabbitMQConfig

	// Infrastructure clients
	rabbitConn rabbitmq.IRabbitMQ
	mongoDB    *mongo.Database
	encrypter  encrypter.Encrypter
	sender     email.ISender

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger         log.Logger
	RabbitMQConfig config.RabbitMQConfig

	// Infrastructure clients
	RabbitConn rabbitmq.IRabbitMQ
	MongoDB    *mongo.Database
	Encrypter  encrypter.Encrypter
	Sender     email.ISender

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the consumer server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
