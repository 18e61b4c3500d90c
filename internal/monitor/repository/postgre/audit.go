package postgres

import (
	"context"
	"encoding/json"

	"github.com/aarondl/sqlboiler/v4/queries"

	"gatherup-api/internal/monitor/repository"
	postgresPkg "gatherup-api/pkg/postgre"
)

// CreateAuditEvent appends one row to the audit trail. The trail is
// insert-only; no update or delete path exists in this service.
func (r *implRepository) CreateAuditEvent(ctx context.Context, opts repository.CreateAuditEventOptions) error {
	metadata, err := json.Marshal(opts.Metadata)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.CreateAuditEvent.Marshal: %v", err)
		return err
	}

	occurredAt := opts.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = r.clock()
	}

	_, err = queries.Raw(`
		INSERT INTO audit_events (id, event_type, entity_type, entity_id, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		postgresPkg.NewUUID(), opts.EventType, opts.EntityType, opts.EntityID, metadata, occurredAt,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.CreateAuditEvent.Exec: %v", err)
		return err
	}

	return nil
}
