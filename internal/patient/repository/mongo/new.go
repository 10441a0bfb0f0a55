package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/encrypter"
	"portal-srv/pkg/log"
)

const (
	patientCollection = "patients"
	familyCollection  = "family_members"
)

type implRepository struct {
	patients *mongo.Collection
	family   *mongo.Collection
	l        log.Logger
	enc      encrypter.Encrypter
}

// New creates a patient repository over MongoDB. Phone and address are
// stored encrypted and returned decrypted.
func New(l log.Logger, db *mongo.Database, enc encrypter.Encrypter) repository.Repository {
	return &implRepository{
		patients: db.Collection(patientCollection),
		family:   db.Collection(familyCollection),
		l:        l,
		enc:      enc,
	}
}
