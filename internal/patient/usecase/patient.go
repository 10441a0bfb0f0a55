package usecase

import (
	"context"
	"errors"

	"portal-srv/internal/model"
	"portal-srv/internal/patient"
	"portal-srv/internal/patient/repository"
	"portal-srv/pkg/hissrv"
	"portal-srv/pkg/util"
)

// canAccess enforces that patients only see their own directory entries.
// Staff roles see everything.
func canAccess(sc model.Scope, patientID string) bool {
	if sc.IsStaff() {
		return true
	}
	return sc.UserID == patientID
}

func (uc *implUseCase) Exists(ctx context.Context, sc model.Scope, input patient.ExistsInput) (patient.ExistsOutput, error) {
	if input.PatientID == "" {
		return patient.ExistsOutput{}, patient.ErrPatientRequired
	}

	exists, err := uc.repo.PatientExists(ctx, input.PatientID)
	if err != nil {
		uc.l.Errorf(ctx, "patient.usecase.Exists: PatientExists failed: %v", err)
		return patient.ExistsOutput{}, patient.ErrDirectoryUnavailable
	}
	if exists {
		return patient.ExistsOutput{Exists: true, Source: patient.SourceLocal}, nil
	}

	// Not in the local directory yet; the HIS is the source of truth for
	// patients registered at other sites.
	hisExists, err := uc.his.PatientExists(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, hissrv.ErrPatientNotFound) {
			return patient.ExistsOutput{Exists: false, Source: patient.SourceHIS}, nil
		}
		uc.l.Warnf(ctx, "patient.usecase.Exists: HIS lookup failed, answering from local directory: %v", err)
		return patient.ExistsOutput{Exists: false, Source: patient.SourceLocal}, nil
	}
	return patient.ExistsOutput{Exists: hisExists, Source: patient.SourceHIS}, nil
}

func (uc *implUseCase) Family(ctx context.Context, sc model.Scope, input patient.FamilyInput) (patient.FamilyOutput, error) {
	if input.PatientID == "" {
		return patient.FamilyOutput{}, patient.ErrPatientRequired
	}
	if !canAccess(sc, input.PatientID) {
		return patient.FamilyOutput{}, patient.ErrNotPermitted
	}

	members, err := uc.repo.ListFamilyMembers(ctx, input.PatientID)
	if err != nil {
		uc.l.Errorf(ctx, "patient.usecase.Family: ListFamilyMembers failed: %v", err)
		return patient.FamilyOutput{}, patient.ErrDirectoryUnavailable
	}
	if len(members) > 0 {
		return patient.FamilyOutput{Members: members}, nil
	}

	hisMembers, err := uc.his.GetFamilyMembers(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, hissrv.ErrPatientNotFound) {
			return patient.FamilyOutput{}, nil
		}
		uc.l.Warnf(ctx, "patient.usecase.Family: HIS roster lookup failed: %v", err)
		return patient.FamilyOutput{}, nil
	}

	out := patient.FamilyOutput{Members: make([]model.FamilyMember, 0, len(hisMembers))}
	for _, m := range hisMembers {
		out.Members = append(out.Members, model.FamilyMember{
			PatientID: m.PatientID,
			Name:      m.Name,
			Relation:  m.Relation,
		})
	}
	return out, nil
}

func (uc *implUseCase) GetProfile(ctx context.Context, sc model.Scope, input patient.GetProfileInput) (patient.GetProfileOutput, error) {
	if input.PatientID == "" {
		return patient.GetProfileOutput{}, patient.ErrPatientRequired
	}
	if !canAccess(sc, input.PatientID) {
		return patient.GetProfileOutput{}, patient.ErrNotPermitted
	}

	p, err := uc.repo.GetPatient(ctx, input.PatientID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return patient.GetProfileOutput{}, patient.ErrPatientNotFound
		}
		uc.l.Errorf(ctx, "patient.usecase.GetProfile: GetPatient failed: %v", err)
		return patient.GetProfileOutput{}, patient.ErrDirectoryUnavailable
	}
	return patient.GetProfileOutput{Patient: *p}, nil
}

func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input patient.UpdateProfileInput) (patient.UpdateProfileOutput, error) {
	if input.PatientID == "" {
		return patient.UpdateProfileOutput{}, patient.ErrPatientRequired
	}
	if !canAccess(sc, input.PatientID) {
		return patient.UpdateProfileOutput{}, patient.ErrNotPermitted
	}
	if input.Email != "" {
		if err := util.IsEmail(input.Email); err != nil {
			return patient.UpdateProfileOutput{}, patient.ErrInvalidEmail
		}
	}
	if input.Phone != "" {
		if err := util.IsPhone(input.Phone); err != nil {
			return patient.UpdateProfileOutput{}, patient.ErrInvalidPhone
		}
	}

	p, err := uc.repo.UpdatePatient(ctx, repository.UpdatePatientOptions{
		ID:      input.PatientID,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return patient.UpdateProfileOutput{}, patient.ErrPatientNotFound
		}
		uc.l.Errorf(ctx, "patient.usecase.UpdateProfile: UpdatePatient failed: %v", err)
		return patient.UpdateProfileOutput{}, patient.ErrDirectoryUnavailable
	}
	return patient.UpdateProfileOutput{Patient: *p}, nil
}
