package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IRabbitMQ is the RabbitMQ connection interface. Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	Channel() (IChannel, error)
}

// IChannel is the RabbitMQ channel interface.
type IChannel interface {
	QueueDeclare(queue QueueArgs) (amqp.Queue, error)
	Publish(ctx context.Context, publish PublishArgs) error
	Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error)
	Close() error
}

// NewRabbitMQ dials RabbitMQ and returns IRabbitMQ.
func NewRabbitMQ(url string) (IRabbitMQ, error) {
	conn := &connectionImpl{url: url}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
