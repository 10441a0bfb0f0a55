package model

import "time"

// Patient is a patient document stored in MongoDB.
// Phone and Address are AES-GCM encrypted at rest; the repository returns
// them decrypted.
type Patient struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Phone     string    `bson:"phone"`
	Address   string    `bson:"address"`
	BirthDate time.Time `bson:"birth_date"`
	Gender    string    `bson:"gender"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// FamilyMember is one entry of a patient's family roster.
type FamilyMember struct {
	PatientID string `bson:"patient_id" json:"patient_id"`
	Name      string `bson:"name" json:"name"`
	Relation  string `bson:"relation" json:"relation"`
}
