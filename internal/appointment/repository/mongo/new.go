package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"portal-srv/internal/appointment/repository"
	"portal-srv/pkg/log"
)

const appointmentCollection = "appointments"

type implRepository struct {
	appointments *mongo.Collection
	l            log.Logger
}

func New(l log.Logger, db *mongo.Database) repository.Repository {
	return &implRepository{
		appointments: db.Collection(appointmentCollection),
		l:            l,
	}
}
