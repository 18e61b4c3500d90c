package repository

import (
	"context"

	"gatherup-api/internal/model"
	"gatherup-api/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sc model.Scope, opts GetOptions) ([]model.Notification, paginator.Paginator, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Notification, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.Notification, error)
}
