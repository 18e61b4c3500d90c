package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/lib/pq"

	"gatherup-api/internal/lifecycle"
	"gatherup-api/internal/model"
)

type squadRow struct {
	ID              string    `boil:"id"`
	Name            string    `boil:"name"`
	Status          string    `boil:"status"`
	StatusChangedAt null.Time `boil:"status_changed_at"`
	CreatedAt       null.Time `boil:"created_at"`
	UpdatedAt       null.Time `boil:"updated_at"`
}

type squadMemberRow struct {
	ID               string      `boil:"id"`
	SquadID          string      `boil:"squad_id"`
	UserID           string      `boil:"user_id"`
	Status           string      `boil:"status"`
	Response         null.String `boil:"response"`
	ReadyConfirmedAt null.Time   `boil:"ready_confirmed_at"`
	CreatedAt        null.Time   `boil:"created_at"`
	UpdatedAt        null.Time   `boil:"updated_at"`
}

func (r *implRepository) ListWarmUpSquads(ctx context.Context) ([]model.Squad, error) {
	states := lifecycle.MonitorableStates()
	statuses := make([]string, len(states))
	for i, s := range states {
		statuses[i] = string(s)
	}

	var rows []squadRow
	err := queries.Raw(`
		SELECT id, name, status, status_changed_at, created_at, updated_at
		FROM squads
		WHERE status = ANY($1) AND deleted_at IS NULL
		ORDER BY status_changed_at ASC`,
		pq.Array(statuses),
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListWarmUpSquads.Bind: %v", err)
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	var memberRows []squadMemberRow
	err = queries.Raw(`
		SELECT id, squad_id, user_id, status, response, ready_confirmed_at, created_at, updated_at
		FROM squad_members
		WHERE squad_id = ANY($1)`,
		pq.Array(ids),
	).Bind(ctx, r.db, &memberRows)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListWarmUpSquads.BindMembers: %v", err)
		return nil, err
	}

	membersBySquad := make(map[string][]model.SquadMember, len(rows))
	for _, m := range memberRows {
		membersBySquad[m.SquadID] = append(membersBySquad[m.SquadID], newSquadMemberFromRow(m))
	}

	res := make([]model.Squad, len(rows))
	for i, row := range rows {
		sq := newSquadFromRow(row)
		sq.Members = membersBySquad[row.ID]
		res[i] = sq
	}

	return res, nil
}

func newSquadFromRow(row squadRow) model.Squad {
	return model.Squad{
		ID:              row.ID,
		Name:            row.Name,
		Status:          model.SquadState(row.Status),
		StatusChangedAt: row.StatusChangedAt.Time,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func newSquadMemberFromRow(row squadMemberRow) model.SquadMember {
	m := model.SquadMember{
		ID:        row.ID,
		SquadID:   row.SquadID,
		UserID:    row.UserID,
		Status:    model.MemberStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
	if row.Response.Valid {
		m.Response = &row.Response.String
	}
	if row.ReadyConfirmedAt.Valid {
		t := row.ReadyConfirmedAt.Time
		m.ReadyConfirmedAt = &t
	}
	return m
}
