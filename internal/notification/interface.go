package notification

import (
	"context"

	"gatherup-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, ip GetInput) (GetOutput, error)
	MarkRead(ctx context.Context, sc model.Scope, id string) (model.Notification, error)
}
