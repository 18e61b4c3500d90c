package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/lib/pq"

	"gatherup-api/internal/model"
)

type ticketRow struct {
	ID              string    `boil:"id"`
	Subject         string    `boil:"subject"`
	RequesterID     string    `boil:"requester_id"`
	Status          string    `boil:"status"`
	FirstResponseAt null.Time `boil:"first_response_at"`
	ResolvedAt      null.Time `boil:"resolved_at"`
	CreatedAt       null.Time `boil:"created_at"`
	UpdatedAt       null.Time `boil:"updated_at"`
}

func (r *implRepository) ListOpenTickets(ctx context.Context) ([]model.Ticket, error) {
	statuses := []string{
		string(model.TicketStatusOpen),
		string(model.TicketStatusPending),
	}

	var rows []ticketRow
	err := queries.Raw(`
		SELECT id, subject, requester_id, status, first_response_at, resolved_at, created_at, updated_at
		FROM tickets
		WHERE status = ANY($1)
		ORDER BY created_at ASC`,
		pq.Array(statuses),
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListOpenTickets.Bind: %v", err)
		return nil, err
	}

	res := make([]model.Ticket, len(rows))
	for i, row := range rows {
		res[i] = newTicketFromRow(row)
	}

	return res, nil
}

func newTicketFromRow(row ticketRow) model.Ticket {
	t := model.Ticket{
		ID:          row.ID,
		Subject:     row.Subject,
		RequesterID: row.RequesterID,
		Status:      model.TicketStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.FirstResponseAt.Valid {
		v := row.FirstResponseAt.Time
		t.FirstResponseAt = &v
	}
	if row.ResolvedAt.Valid {
		v := row.ResolvedAt.Time
		t.ResolvedAt = &v
	}
	return t
}
