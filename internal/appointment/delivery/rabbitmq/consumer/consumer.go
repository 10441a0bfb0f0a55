package consumer

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"portal-srv/pkg/email"
	"portal-srv/pkg/rabbitmq"
	"portal-srv/pkg/util"
)

// reminderMessage mirrors the payload published on booking.
type reminderMessage struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorName    string    `json:"doctor_name"`
	Department    string    `json:"department"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// ConsumeReminders declares the queue and starts draining it in a background
// goroutine. It returns after the consumer is registered.
func (c *implConsumer) ConsumeReminders(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	c.channel = ch

	if _, err := ch.QueueDeclare(rabbitmq.QueueArgs{
		Name:    c.queue,
		Durable: true,
	}); err != nil {
		return err
	}

	deliveries, err := ch.Consume(rabbitmq.ConsumeArgs{
		Queue:    c.queue,
		Consumer: "portal-reminder-consumer",
	})
	if err != nil {
		return err
	}

	go c.drain(ctx, deliveries)

	c.l.Infof(ctx, "appointment.consumer.ConsumeReminders: consuming from %s", c.queue)
	return nil
}

func (c *implConsumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				c.l.Warn(ctx, "appointment.consumer.drain: delivery channel closed")
				return
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *implConsumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var msg reminderMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.l.Errorf(ctx, "appointment.consumer.handleDelivery: poison message dropped: %v", err)
		_ = d.Nack(false, false)
		return
	}

	if err := c.sendReminder(ctx, msg); err != nil {
		c.l.Errorf(ctx, "appointment.consumer.handleDelivery: send failed for %s, requeueing: %v", msg.AppointmentID, err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}

func (c *implConsumer) sendReminder(ctx context.Context, msg reminderMessage) error {
	p, err := c.patientRepo.GetPatient(ctx, msg.PatientID)
	if err != nil {
		return err
	}
	if p.Email == "" {
		c.l.Warnf(ctx, "appointment.consumer.sendReminder: patient %s has no email, skipping", msg.PatientID)
		return nil
	}

	scheduled := msg.ScheduledAt.In(util.GetDefaultTimezone())
	e, err := email.NewEmail(ctx, email.EmailMeta{
		Recipient:    p.Email,
		TemplateType: email.AppointmentReminderTemplate,
	}, email.AppointmentReminder{
		PatientName: p.Name,
		Doctor:      msg.DoctorName,
		Department:  msg.Department,
		Date:        util.DateToStr(scheduled),
		Time:        util.TimeToStr(scheduled),
		Location:    "HCMUT Medical Center",
	})
	if err != nil {
		return err
	}

	return c.sender.Send(ctx, e)
}

// Close releases the consumer channel.
func (c *implConsumer) Close() error {
	if c.channel != nil {
		return c.channel.Close()
	}
	return nil
}
