package lifecycle

import (
	"testing"

	"gatherup-api/internal/model"
)

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from model.SquadState
		to   model.SquadState
		want bool
	}{
		{"draft to confirmed", model.SquadStateDraft, model.SquadStateConfirmed, true},
		{"confirmed to warming_up", model.SquadStateConfirmed, model.SquadStateWarmingUp, true},
		{"warming_up to ready_for_review", model.SquadStateWarmingUp, model.SquadStateReadyForReview, true},
		{"ready_for_review to approved", model.SquadStateReadyForReview, model.SquadStateApproved, true},
		{"ready_for_review revert to warming_up", model.SquadStateReadyForReview, model.SquadStateWarmingUp, true},
		{"approved to active", model.SquadStateApproved, model.SquadStateActive, true},
		{"active to completed", model.SquadStateActive, model.SquadStateCompleted, true},
		{"completed to archived", model.SquadStateCompleted, model.SquadStateArchived, true},
		{"cancelled to archived", model.SquadStateCancelled, model.SquadStateArchived, true},
		{"draft skip to warming_up", model.SquadStateDraft, model.SquadStateWarmingUp, false},
		{"confirmed skip to approved", model.SquadStateConfirmed, model.SquadStateApproved, false},
		{"backward active to warming_up", model.SquadStateActive, model.SquadStateWarmingUp, false},
		{"backward approved to ready_for_review", model.SquadStateApproved, model.SquadStateReadyForReview, false},
		{"archived is terminal", model.SquadStateArchived, model.SquadStateDraft, false},
		{"unknown from state", model.SquadState("limbo"), model.SquadStateConfirmed, false},
		{"unknown to state", model.SquadStateDraft, model.SquadState("limbo"), false},
		{"empty from state", model.SquadState(""), model.SquadStateDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("IsValidTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsValidTransitionMatchesTable(t *testing.T) {
	// Every listed edge must validate; everything else must not.
	allStates := []model.SquadState{
		model.SquadStateDraft, model.SquadStateConfirmed, model.SquadStateWarmingUp,
		model.SquadStateReadyForReview, model.SquadStateApproved, model.SquadStateActive,
		model.SquadStateCompleted, model.SquadStateCancelled, model.SquadStateArchived,
		model.SquadState("unknown"),
	}

	for _, from := range allStates {
		listed := make(map[model.SquadState]bool)
		for _, to := range AvailableTransitions(from) {
			listed[to] = true
		}
		for _, to := range allStates {
			if got := IsValidTransition(from, to); got != listed[to] {
				t.Errorf("IsValidTransition(%q, %q) = %v, table says %v", from, to, got, listed[to])
			}
		}
	}
}

func TestAvailableTransitionsUnknownState(t *testing.T) {
	got := AvailableTransitions(model.SquadState("bogus"))
	if got == nil {
		t.Fatal("AvailableTransitions should return empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("AvailableTransitions for unknown state = %v, want empty", got)
	}
}

func TestDerivedPredicates(t *testing.T) {
	tests := []struct {
		state            model.SquadState
		showInstructions bool
		inWarmUp         bool
		needsAdmin       bool
	}{
		{model.SquadStateDraft, false, false, false},
		{model.SquadStateConfirmed, false, false, false},
		{model.SquadStateWarmingUp, false, true, false},
		{model.SquadStateReadyForReview, false, true, true},
		{model.SquadStateApproved, true, false, false},
		{model.SquadStateActive, true, false, false},
		{model.SquadStateCompleted, true, false, false},
		{model.SquadStateCancelled, false, false, false},
		{model.SquadStateArchived, false, false, false},
		{model.SquadState("unknown"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			if got := ShouldShowInstructions(tt.state); got != tt.showInstructions {
				t.Errorf("ShouldShowInstructions(%q) = %v, want %v", tt.state, got, tt.showInstructions)
			}
			if got := IsInWarmUp(tt.state); got != tt.inWarmUp {
				t.Errorf("IsInWarmUp(%q) = %v, want %v", tt.state, got, tt.inWarmUp)
			}
			if got := NeedsAdminAction(tt.state); got != tt.needsAdmin {
				t.Errorf("NeedsAdminAction(%q) = %v, want %v", tt.state, got, tt.needsAdmin)
			}
		})
	}
}
