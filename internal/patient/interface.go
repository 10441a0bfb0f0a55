package patient

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Exists(ctx context.Context, sc model.Scope, input ExistsInput) (ExistsOutput, error)
	Family(ctx context.Context, sc model.Scope, input FamilyInput) (FamilyOutput, error)
	GetProfile(ctx context.Context, sc model.Scope, input GetProfileInput) (GetProfileOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (UpdateProfileOutput, error)
}
