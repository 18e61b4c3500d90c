package postgres

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"

	"gatherup-api/internal/model"
)

type userRow struct {
	ID       string      `boil:"id"`
	Username string      `boil:"username"`
	Email    string      `boil:"email"`
	FullName null.String `boil:"full_name"`
	Role     string      `boil:"role"`
}

// ListAdmins resolves the admin principals that receive monitor
// notifications. Deactivated and deleted accounts are excluded.
func (r *implRepository) ListAdmins(ctx context.Context) ([]model.User, error) {
	var rows []userRow
	err := queries.Raw(`
		SELECT id, username, email, full_name, role
		FROM users
		WHERE role = $1 AND is_active = TRUE AND deleted_at IS NULL
		ORDER BY username ASC`,
		model.RoleAdmin,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.monitor.repository.postgres.ListAdmins.Bind: %v", err)
		return nil, err
	}

	res := make([]model.User, len(rows))
	for i, row := range rows {
		u := model.User{
			ID:       row.ID,
			Username: row.Username,
			Email:    row.Email,
			Role:     row.Role,
		}
		if row.FullName.Valid {
			u.FullName = &row.FullName.String
		}
		res[i] = u
	}

	return res, nil
}
