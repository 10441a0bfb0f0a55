package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portal-srv/internal/model"
	"portal-srv/internal/patient/repository"
)

func (r *implRepository) GetPatient(ctx context.Context, patientID string) (*model.Patient, error) {
	var p model.Patient
	if err := r.patients.FindOne(ctx, bson.M{"_id": patientID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPatientNotFound
		}
		r.l.Errorf(ctx, "patient.repository.mongo.GetPatient: FindOne failed: %v", err)
		return nil, repository.ErrQueryFailed
	}

	if err := r.decryptPHI(&p); err != nil {
		r.l.Errorf(ctx, "patient.repository.mongo.GetPatient: decrypt failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	return &p, nil
}

func (r *implRepository) PatientExists(ctx context.Context, patientID string) (bool, error) {
	count, err := r.patients.CountDocuments(ctx, bson.M{"_id": patientID}, options.Count().SetLimit(1))
	if err != nil {
		r.l.Errorf(ctx, "patient.repository.mongo.PatientExists: CountDocuments failed: %v", err)
		return false, repository.ErrQueryFailed
	}
	return count > 0, nil
}

func (r *implRepository) UpdatePatient(ctx context.Context, opts repository.UpdatePatientOptions) (*model.Patient, error) {
	set := bson.M{"updated_at": time.Now()}
	if opts.Email != "" {
		set["email"] = opts.Email
	}
	if opts.Phone != "" {
		enc, err := r.enc.Encrypt(opts.Phone)
		if err != nil {
			r.l.Errorf(ctx, "patient.repository.mongo.UpdatePatient: encrypt phone failed: %v", err)
			return nil, repository.ErrMutationFailed
		}
		set["phone"] = enc
	}
	if opts.Address != "" {
		enc, err := r.enc.Encrypt(opts.Address)
		if err != nil {
			r.l.Errorf(ctx, "patient.repository.mongo.UpdatePatient: encrypt address failed: %v", err)
			return nil, repository.ErrMutationFailed
		}
		set["address"] = enc
	}

	var p model.Patient
	err := r.patients.FindOneAndUpdate(
		ctx,
		bson.M{"_id": opts.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrPatientNotFound
		}
		r.l.Errorf(ctx, "patient.repository.mongo.UpdatePatient: FindOneAndUpdate failed: %v", err)
		return nil, repository.ErrMutationFailed
	}

	if err := r.decryptPHI(&p); err != nil {
		r.l.Errorf(ctx, "patient.repository.mongo.UpdatePatient: decrypt failed: %v", err)
		return nil, repository.ErrMutationFailed
	}
	return &p, nil
}

func (r *implRepository) ListFamilyMembers(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	cur, err := r.family.Find(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		r.l.Errorf(ctx, "patient.repository.mongo.ListFamilyMembers: Find failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	defer cur.Close(ctx)

	var members []model.FamilyMember
	if err := cur.All(ctx, &members); err != nil {
		r.l.Errorf(ctx, "patient.repository.mongo.ListFamilyMembers: cursor All failed: %v", err)
		return nil, repository.ErrQueryFailed
	}
	return members, nil
}

// decryptPHI replaces the encrypted phone and address with plaintext.
// Empty fields are skipped so partially filled documents still load.
func (r *implRepository) decryptPHI(p *model.Patient) error {
	if p.Phone != "" {
		plain, err := r.enc.Decrypt(p.Phone)
		if err != nil {
			return err
		}
		p.Phone = plain
	}
	if p.Address != "" {
		plain, err := r.enc.Decrypt(p.Address)
		if err != nil {
			return err
		}
		p.Address = plain
	}
	return nil
}
