package rabbitmq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func (c *connectionImpl) connect() error {
	deadline := time.Now().Add(RetryConnectionTimeout)
	for {
		conn, err := amqp.Dial(c.url)
		if err == nil {
			c.conn = conn
			return nil
		}
		if time.Now().After(deadline) {
			return ErrConnectionTimeout
		}
		time.Sleep(RetryConnectionDelay)
	}
}

func (c *connectionImpl) Close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

func (c *connectionImpl) IsReady() bool {
	return c.conn != nil && !c.conn.IsClosed()
}

func (c *connectionImpl) Channel() (IChannel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return &channelImpl{ch: ch}, nil
}

func (ch *channelImpl) QueueDeclare(queue QueueArgs) (amqp.Queue, error) {
	return ch.ch.QueueDeclare(queue.Name, queue.Durable, queue.AutoDelete, queue.Exclusive, queue.NoWait, queue.Args)
}

func (ch *channelImpl) Publish(ctx context.Context, publish PublishArgs) error {
	contentType := publish.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	return ch.ch.PublishWithContext(ctx, publish.Exchange, publish.RoutingKey, publish.Mandatory, publish.Immediate,
		amqp.Publishing{
			ContentType:  contentType,
			Body:         publish.Body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
}

func (ch *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	return ch.ch.Consume(consume.Queue, consume.Consumer, consume.AutoAck, consume.Exclusive, consume.NoLocal, consume.NoWait, consume.Args)
}

func (ch *channelImpl) Close() error {
	return ch.ch.Close()
}
