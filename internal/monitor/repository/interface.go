package repository

import (
	"context"

	"gatherup-api/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListWarmUpSquads(ctx context.Context) ([]model.Squad, error)
	ListOpenTickets(ctx context.Context) ([]model.Ticket, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
	// AdmitBreach records the breach marker and reports whether the
	// breach is new. A false result means the marker already exists
	// and downstream notification must be suppressed.
	AdmitBreach(ctx context.Context, opts AdmitBreachOptions) (bool, error)
	CreateNotifications(ctx context.Context, opts CreateNotificationsOptions) (int, error)
	CreateAuditEvent(ctx context.Context, opts CreateAuditEventOptions) error
}
