package rabbitmq

import (
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// RetryConnectionDelay is the wait between dial attempts.
	RetryConnectionDelay = 2 * time.Second
	// RetryConnectionTimeout bounds the total dial time.
	RetryConnectionTimeout = 30 * time.Second
)

// ErrConnectionTimeout is returned when dialing exceeds RetryConnectionTimeout.
var ErrConnectionTimeout = errors.New("rabbitmq: connection timeout")

// QueueArgs holds queue declaration arguments.
type QueueArgs struct {
	Name       string
	Durable    bool
	AutoDelete bool
	Exclusive  bool
	NoWait     bool
	Args       amqp.Table
}

// PublishArgs holds publish arguments.
type PublishArgs struct {
	Exchange    string
	RoutingKey  string
	Mandatory   bool
	Immediate   bool
	ContentType string
	Body        []byte
}

// ConsumeArgs holds consume arguments.
type ConsumeArgs struct {
	Queue     string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoLocal   bool
	NoWait    bool
	Args      amqp.Table
}

// connectionImpl implements IRabbitMQ.
type connectionImpl struct {
	url  string
	conn *amqp.Connection
}

// channelImpl implements IChannel.
type channelImpl struct {
	ch *amqp.Channel
}
