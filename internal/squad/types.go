package squad

import (
	"gatherup-api/internal/lifecycle"
	"gatherup-api/internal/model"
)

type UpdateStatusInput struct {
	ID     string
	Status model.SquadState
}

// DetailOutput carries the squad together with its derived lifecycle
// view: warm-up progress, the transitions currently allowed, and
// whether participants should see event instructions.
type DetailOutput struct {
	Squad                model.Squad
	Progress             lifecycle.WarmUpProgress
	AvailableTransitions []model.SquadState
	ShowInstructions     bool
}
