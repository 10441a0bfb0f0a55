package appointment

import (
	"context"

	"portal-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Book(ctx context.Context, sc model.Scope, input BookInput) (BookOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Cancel(ctx context.Context, sc model.Scope, input CancelInput) error
}
