package repository

import "gatherup-api/internal/model"

// UpdateStatusOptions contains options for a status transition.
// FromStatus guards against concurrent transitions; the update only
// applies while the squad is still in that state.
type UpdateStatusOptions struct {
	ID         string
	FromStatus model.SquadState
	ToStatus   model.SquadState
}
