package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portal-srv/config"
	configMongo "portal-srv/config/mongo"
	configRabbit "portal-srv/config/rabbitmq"
	"portal-srv/internal/consumer"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/email"
	"portal-srv/pkg/encrypter"
	"portal-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portal Reminder Consumer Service...")

	// MongoDB (patient directory lookups)
	mongoDB, err := configMongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MongoDB: %v", err)
		return
	}
	defer configMongo.Disconnect(ctx)
	logger.Info(ctx, "MongoDB client initialized")

	// RabbitMQ (reminder queue)
	rabbitConn, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// SMTP sender (reminder emails)
	sender, err := email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
		UseTLS:   cfg.SMTP.UseTLS,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize SMTP sender: %v", err)
		return
	}
	logger.Info(ctx, "SMTP sender initialized")

	// Encrypter (PHI decryption for patient lookups)
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:         logger,
		RabbitMQConfig: cfg.RabbitMQ,
		RabbitConn:     rabbitConn,
		MongoDB:        mongoDB,
		Encrypter:      encrypterInstance,
		Sender:         sender,
		Discord:        discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create consumer server: %v", err)
		return
	}

	// Run consumer server
	logger.Info(ctx, "Consumer server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Consumer server error: %v", err)
		return
	}

	logger.Info(ctx, "Consumer server stopped gracefully")
}
