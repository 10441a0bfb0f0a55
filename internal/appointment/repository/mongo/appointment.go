package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portal-srv/internal/appointment/repository"
	"portal-srv/internal/model"
)

func (r *implRepository) CreateAppointment(ctx context.Context, opts repository.CreateAppointmentOptions) (*model.Appointment, error) {
	now := time.Now()
	a := model.Appointment{
		ID:          opts.ID,
		PatientID:   opts.PatientID,
		DoctorName:  opts.DoctorName,
		Department:  opts.Department,
		ScheduledAt: opts.ScheduledAt,
		Status:      model.AppointmentStatusBooked,
		Note:        opts.Note,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := r.appointments.InsertOne(ctx, a); err != nil {
		r.l.Errorf(ctx, "appointment.repository.mongo.CreateAppointment: InsertOne failed: %v", err)
		return nil, repository.ErrMutationFailed
	}
	return &a, nil
}

func (r *implRepository) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	var a model.Appointment
	if err := r.appointments.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrAppointmentNotFound
		}
		r.l.Errorf(ctx, "appointment.repository.mongo.GetAppointment: FindOne failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	return &a, nil
}

func (r *implRepository) ListAppointments(ctx context.Context, opts repository.ListAppointmentsOptions) ([]model.Appointment, error) {
	filter := bson.M{}
	if opts.PatientID != "" {
		filter["patient_id"] = opts.PatientID
	}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}

	cur, err := r.appointments.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}}))
	if err != nil {
		r.l.Errorf(ctx, "appointment.repository.mongo.ListAppointments: Find failed: %v", err)
		return nil, repository.ErrQueryFailed
	}

	var appointments []model.Appointment
	if err := cur.All(ctx, &appointments); err != nil {
		r.l.Errorf(ctx, "appointment.repository.mongo.ListAppointments: cursor All failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	return appointments, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	res, err := r.appointments.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		r.l.Errorf(ctx, "appointment.repository.mongo.UpdateStatus: UpdateOne failed: %v", err)
		return repository.ErrMutationFailed
	}
	if res.MatchedCount == 0 {
		return repository.ErrAppointmentNotFound
	}
	return nil
}
