package postgres

import (
	"context"
	"database/sql"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"gatherup-api/internal/model"
	"gatherup-api/internal/squad/repository"
	postgresPkg "gatherup-api/pkg/postgre"
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

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Squad, error) {
	if err := postgresPkg.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.squad.repository.postgres.Detail.IsUUID: %v", err)
		return model.Squad{}, err
	}

	var row squadRow
	err := queries.Raw(`
		SELECT id, name, status, status_changed_at, created_at, updated_at
		FROM squads
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Squad{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.squad.repository.postgres.Detail.Bind: %v", err)
		return model.Squad{}, err
	}

	var memberRows []squadMemberRow
	err = queries.Raw(`
		SELECT id, squad_id, user_id, status, response, ready_confirmed_at, created_at, updated_at
		FROM squad_members
		WHERE squad_id = $1`,
		id,
	).Bind(ctx, r.db, &memberRows)
	if err != nil {
		r.l.Errorf(ctx, "internal.squad.repository.postgres.Detail.BindMembers: %v", err)
		return model.Squad{}, err
	}

	sq := newSquadFromRow(row)
	sq.Members = make([]model.SquadMember, len(memberRows))
	for i, m := range memberRows {
		sq.Members[i] = newSquadMemberFromRow(m)
	}

	return sq, nil
}

func (r *implRepository) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Squad, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		r.l.Errorf(ctx, "internal.squad.repository.postgres.UpdateStatus.IsUUID: %v", err)
		return model.Squad{}, err
	}

	now := r.clock()
	res, err := queries.Raw(`
		UPDATE squads
		SET status = $1, status_changed_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4 AND deleted_at IS NULL`,
		string(opts.ToStatus), now, opts.ID, string(opts.FromStatus),
	).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.squad.repository.postgres.UpdateStatus.Exec: %v", err)
		return model.Squad{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.squad.repository.postgres.UpdateStatus.RowsAffected: %v", err)
		return model.Squad{}, err
	}
	if affected == 0 {
		return model.Squad{}, repository.ErrStale
	}

	return r.Detail(ctx, sc, opts.ID)
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
