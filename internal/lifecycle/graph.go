// Package lifecycle holds the squad lifecycle state machine and the
// warm-up progress calculation. Everything here is pure: callers are
// responsible for rejecting writes that fail IsValidTransition.
package lifecycle

import "gatherup-api/internal/model"

// transitions is the full squad state graph. The only permitted
// backward edge is ready_for_review -> warming_up (admin revert).
var transitions = map[model.SquadState][]model.SquadState{
	model.SquadStateDraft:          {model.SquadStateConfirmed, model.SquadStateCancelled},
	model.SquadStateConfirmed:      {model.SquadStateWarmingUp, model.SquadStateCancelled},
	model.SquadStateWarmingUp:      {model.SquadStateReadyForReview, model.SquadStateCancelled},
	model.SquadStateReadyForReview: {model.SquadStateApproved, model.SquadStateWarmingUp, model.SquadStateCancelled},
	model.SquadStateApproved:       {model.SquadStateActive, model.SquadStateCancelled},
	model.SquadStateActive:         {model.SquadStateCompleted, model.SquadStateCancelled},
	model.SquadStateCompleted:      {model.SquadStateArchived},
	model.SquadStateCancelled:      {model.SquadStateArchived},
	model.SquadStateArchived:       {},
}

// Membership sets behind the derived predicates.
var (
	instructionStates = map[model.SquadState]struct{}{
		model.SquadStateApproved:  {},
		model.SquadStateActive:    {},
		model.SquadStateCompleted: {},
	}
	warmUpStates = map[model.SquadState]struct{}{
		model.SquadStateWarmingUp:      {},
		model.SquadStateReadyForReview: {},
	}
	adminActionStates = map[model.SquadState]struct{}{
		model.SquadStateReadyForReview: {},
	}
)

// IsValidTransition reports whether from -> to is a permitted edge.
// Unknown states are never valid "from" states.
func IsValidTransition(from, to model.SquadState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AvailableTransitions returns the states reachable from state.
// Unknown states are treated as terminal: empty result, no error.
func AvailableTransitions(state model.SquadState) []model.SquadState {
	next, ok := transitions[state]
	if !ok {
		return []model.SquadState{}
	}
	out := make([]model.SquadState, len(next))
	copy(out, next)
	return out
}

// IsKnownState reports whether state appears in the transition table.
func IsKnownState(state model.SquadState) bool {
	_, ok := transitions[state]
	return ok
}

// ShouldShowInstructions reports whether members should see the
// activity instructions for a squad in this state.
func ShouldShowInstructions(state model.SquadState) bool {
	_, ok := instructionStates[state]
	return ok
}

// IsInWarmUp reports whether the squad is in a state the monitor
// observes.
func IsInWarmUp(state model.SquadState) bool {
	_, ok := warmUpStates[state]
	return ok
}

// NeedsAdminAction reports whether the squad is blocked on an admin.
func NeedsAdminAction(state model.SquadState) bool {
	_, ok := adminActionStates[state]
	return ok
}

// MonitorableStates lists the states the warm-up monitor scans for.
func MonitorableStates() []model.SquadState {
	return []model.SquadState{model.SquadStateWarmingUp, model.SquadStateReadyForReview}
}
