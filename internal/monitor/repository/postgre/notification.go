package postgres

import (
	"context"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"

	"gatherup-api/internal/monitor/repository"
	postgresPkg "gatherup-api/pkg/postgre"
)

const notificationInsertCols = 8

func (r *implRepository) CreateNotifications(ctx context.Context, opts repository.CreateNotificationsOptions) (int, error) {
	if len(opts.Rows) == 0 {
		return 0, nil
	}

	now := r.clock()
	args := make([]interface{}, 0, len(opts.Rows)*notificationInsertCols)
	for _, row := range opts.Rows {
		args = append(args,
			postgresPkg.NewUUID(),
			row.RecipientID,
			row.Category,
			row.Title,
			row.Body,
			row.EntityType,
			row.EntityID,
			now,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (id, recipient_id, category, title, body, entity_type, entity_id, created_at)
		VALUES %s`,
		strmangle.Placeholders(true, len(args), 1, notificationInsertCols),
	)

	res, err := queries.Raw(query, args...).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.CreateNotifications.Exec: %v", err)
		return 0, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.CreateNotifications.RowsAffected: %v", err)
		return 0, err
	}

	return int(inserted), nil
}
