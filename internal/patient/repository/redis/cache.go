package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"portal-srv/internal/model"
	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/redis"
)

func (r *implRepository) GetPatient(ctx context.Context, patientID string) (*model.Patient, error) {
	return r.next.GetPatient(ctx, patientID)
}

func (r *implRepository) PatientExists(ctx context.Context, patientID string) (bool, error) {
	key := fmt.Sprintf(existsKeyFormat, patientID)

	cached, err := r.rd.Get(ctx, key)
	if err == nil {
		return cached == "1", nil
	}
	if !redis.IsNil(err) {
		r.l.Warnf(ctx, "patient.repository.redis.PatientExists: cache read failed: %v", err)
	}

	exists, err := r.next.PatientExists(ctx, patientID)
	if err != nil {
		return false, err
	}

	value := "0"
	if exists {
		value = "1"
	}
	if err := r.rd.Set(ctx, key, value, cacheTTL); err != nil {
		r.l.Warnf(ctx, "patient.repository.redis.PatientExists: cache write failed: %v", err)
	}
	return exists, nil
}

func (r *implRepository) UpdatePatient(ctx context.Context, opts repository.UpdatePatientOptions) (*model.Patient, error) {
	p, err := r.next.UpdatePatient(ctx, opts)
	if err != nil {
		return nil, err
	}

	keys := []string{
		fmt.Sprintf(existsKeyFormat, opts.ID),
		fmt.Sprintf(familyKeyFormat, opts.ID),
	}
	if err := r.rd.Delete(ctx, keys...); err != nil {
		r.l.Warnf(ctx, "patient.repository.redis.UpdatePatient: cache invalidation failed: %v", err)
	}
	return p, nil
}

func (r *implRepository) ListFamilyMembers(ctx context.Context, patientID string) ([]model.FamilyMember, error) {
	key := fmt.Sprintf(familyKeyFormat, patientID)

	cached, err := r.rd.Get(ctx, key)
	if err == nil {
		var members []model.FamilyMember
		if jsonErr := json.Unmarshal([]byte(cached), &members); jsonErr == nil {
			return members, nil
		}
		r.l.Warnf(ctx, "patient.repository.redis.ListFamilyMembers: corrupt cache entry for %s, refetching", patientID)
	} else if !redis.IsNil(err) {
		r.l.Warnf(ctx, "patient.repository.redis.ListFamilyMembers: cache read failed: %v", err)
	}

	members, err := r.next.ListFamilyMembers(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(members); jsonErr == nil {
		if err := r.rd.Set(ctx, key, string(data), cacheTTL); err != nil {
			r.l.Warnf(ctx, "patient.repository.redis.ListFamilyMembers: cache write failed: %v", err)
		}
	}
	return members, nil
}
