package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"gatherup-api/internal/model"
	"gatherup-api/internal/notification/repository"
	"gatherup-api/pkg/paginator"
	postgresPkg "gatherup-api/pkg/postgre"
)

type notificationRow struct {
	ID          string    `boil:"id"`
	RecipientID string    `boil:"recipient_id"`
	Category    string    `boil:"category"`
	Title       string    `boil:"title"`
	Body        string    `boil:"body"`
	EntityType  string    `boil:"entity_type"`
	EntityID    string    `boil:"entity_id"`
	ReadAt      null.Time `boil:"read_at"`
	CreatedAt   null.Time `boil:"created_at"`
}

type countRow struct {
	Total int64 `boil:"total"`
}

// buildGetFilter scopes every listing to the requesting recipient.
func buildGetFilter(sc model.Scope, opts repository.GetOptions) (string, []interface{}) {
	where := "WHERE recipient_id = $1"
	args := []interface{}{sc.UserID}

	if opts.Filter.UnreadOnly {
		where += " AND read_at IS NULL"
	}
	if opts.Filter.Category != "" {
		args = append(args, opts.Filter.Category)
		where += fmt.Sprintf(" AND category = $%d", len(args))
	}

	return where, args
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Notification, paginator.Paginator, error) {
	where, args := buildGetFilter(sc, opts)

	var count countRow
	err := queries.Raw(
		"SELECT COUNT(*) AS total FROM notifications "+where,
		args...,
	).Bind(ctx, r.db, &count)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Count: %v", err)
		return nil, paginator.Paginator{}, err
	}

	pq := opts.PaginateQuery
	pq.Adjust()

	listArgs := append(args, pq.Limit, pq.Offset())
	query := fmt.Sprintf(`
		SELECT id, recipient_id, category, title, body, entity_type, entity_id, read_at, created_at
		FROM notifications %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2,
	)

	var rows []notificationRow
	if err := queries.Raw(query, listArgs...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, err
	}

	res := make([]model.Notification, len(rows))
	for i, row := range rows {
		res[i] = newNotificationFromRow(row)
	}

	pag := paginator.Paginator{
		Total:       count.Total,
		Count:       int64(len(res)),
		PerPage:     pq.Limit,
		CurrentPage: pq.Page,
	}

	return res, pag, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Notification, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Detail.IsUUID: %v", err)
		return model.Notification{}, err
	}

	var row notificationRow
	err := queries.Raw(`
		SELECT id, recipient_id, category, title, body, entity_type, entity_id, read_at, created_at
		FROM notifications
		WHERE id = $1 AND recipient_id = $2`,
		id, sc.UserID,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Notification{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Detail.Bind: %v", err)
		return model.Notification{}, err
	}

	return newNotificationFromRow(row), nil
}

func (r *implRepository) MarkRead(ctx context.Context, sc model.Scope, id string) (model.Notification, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkRead.IsUUID: %v", err)
		return model.Notification{}, err
	}

	// Marking an already-read notification keeps the original read_at.
	res, err := queries.Raw(`
		UPDATE notifications
		SET read_at = $1
		WHERE id = $2 AND recipient_id = $3 AND read_at IS NULL`,
		r.clock(), id, sc.UserID,
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkRead.Exec: %v", err)
		return model.Notification{}, err
	}
	if _, err := res.RowsAffected(); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkRead.RowsAffected: %v", err)
		return model.Notification{}, err
	}

	return r.Detail(ctx, sc, id)
}

func newNotificationFromRow(row notificationRow) model.Notification {
	n := model.Notification{
		ID:          row.ID,
		RecipientID: row.RecipientID,
		Category:    row.Category,
		Title:       row.Title,
		Body:        row.Body,
		EntityType:  row.EntityType,
		EntityID:    row.EntityID,
		CreatedAt:   row.CreatedAt.Time,
	}
	if row.ReadAt.Valid {
		t := row.ReadAt.Time
		n.ReadAt = &t
	}
	return n
}
