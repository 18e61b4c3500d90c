package postgres

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries"

	"gatherup-api/internal/monitor/repository"
	postgresPkg "gatherup-api/pkg/postgre"
)

// AdmitBreach inserts the breach marker, relying on the unique
// constraint over (entity_type, entity_id, category) to stay correct
// under concurrent sweeps. When a lookback window is set and the
// existing marker is older than the window, the marker is re-armed
// and the breach admitted again.
func (r *implRepository) AdmitBreach(ctx context.Context, opts repository.AdmitBreachOptions) (bool, error) {
	res, err := queries.Raw(`
		INSERT INTO monitor_breaches (id, entity_type, entity_id, category, detected_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (entity_type, entity_id, category) DO NOTHING`,
		postgresPkg.NewUUID(), opts.EntityType, opts.EntityID, opts.Category, opts.DetectedAt,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.AdmitBreach.Insert: %v", err)
		return false, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.AdmitBreach.RowsAffected: %v", err)
		return false, err
	}
	if inserted > 0 {
		return true, nil
	}

	if opts.Lookback <= 0 {
		return false, nil
	}

	cutoff := opts.DetectedAt.Add(-opts.Lookback)
	res, err = queries.Raw(`
		UPDATE monitor_breaches
		SET detected_at = $1
		WHERE entity_type = $2 AND entity_id = $3 AND category = $4 AND detected_at < $5`,
		opts.DetectedAt, opts.EntityType, opts.EntityID, opts.Category, cutoff,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.AdmitBreach.Rearm: %v", err)
		return false, err
	}

	rearmed, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.AdmitBreach.RearmRowsAffected: %v", err)
		return false, err
	}

	return rearmed > 0, nil
}
