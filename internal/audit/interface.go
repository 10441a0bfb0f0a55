package audit

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) error
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
