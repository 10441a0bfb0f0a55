package usecase

import (
	"context"
	"encoding/json"
	"time"

	"portal-srv/internal/model"
	"portal-srv/pkg/rabbitmq"
)

// reminderMessage is the queue payload drained by the reminder consumer.
type reminderMessage struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorName    string    `json:"doctor_name"`
	Department    string    `json:"department"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

// publishReminder enqueues a reminder for a booked appointment. A queue
// failure never fails the booking; the appointment is already stored.
func (uc *implUseCase) publishReminder(ctx context.Context, a model.Appointment) {
	body, err := json.Marshal(reminderMessage{
		AppointmentID: a.ID,
		PatientID:     a.PatientID,
		DoctorName:    a.DoctorName,
		Department:    a.Department,
		ScheduledAt:   a.ScheduledAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.publishReminder: marshal failed: %v", err)
		return
	}

	ch, err := uc.rmq.Channel()
	if err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.publishReminder: open channel failed: %v", err)
		return
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(rabbitmq.QueueArgs{
		Name:    uc.config.ReminderQueue,
		Durable: true,
	}); err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.publishReminder: queue declare failed: %v", err)
		return
	}

	if err := ch.Publish(ctx, rabbitmq.PublishArgs{
		RoutingKey:  uc.config.ReminderQueue,
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		uc.l.Errorf(ctx, "appointment.usecase.publishReminder: publish failed: %v", err)
	}
}
