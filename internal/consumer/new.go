package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:              cfg.Logger,
		rabbitMQConfig: cfg.RabbitMQConfig,
		rabbitConn:     cfg.RabbitConn,
		mongoDB:        cfg.MongoDB,
		encrypter:      cfg.Encrypter,
		sender:         cfg.Sender,
		discord:        cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.rabbitMQConfig.ReminderQueue == "" {
		return fmt.Errorf("reminder queue is required")
	}

	// Infrastructure clients
	if srv.rabbitConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}
	if srv.mongoDB == nil {
		return fmt.Errorf("mongo db is required")
	}
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}
	if srv.sender == nil {
		return fmt.Errorf("email sender is required")
	}

	return nil
}
