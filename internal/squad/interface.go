package squad

import (
	"context"

	"gatherup-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	UpdateStatus(ctx context.Context, sc model.Scope, ip UpdateStatusInput) (DetailOutput, error)
}
