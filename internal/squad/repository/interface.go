package repository

import (
	"context"

	"gatherup-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, sc model.Scope, id string) (model.Squad, error)
	UpdateStatus(ctx context.Context, sc model.Scope, opts UpdateStatusOptions) (model.Squad, error)
}
