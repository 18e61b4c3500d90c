package lifecycle

import (
	"testing"
	"time"

	"gatherup-api/internal/model"
)

func member(status model.MemberStatus, response string, confirmed bool) model.SquadMember {
	m := model.SquadMember{Status: status}
	if response != "" {
		m.Response = &response
	}
	if confirmed {
		ts := time.Now()
		m.ReadyConfirmedAt = &ts
	}
	return m
}

func TestComputeWarmUpProgress(t *testing.T) {
	tests := []struct {
		name           string
		members        []model.SquadMember
		minReady       int
		wantTotal      int
		wantReady      int
		wantPercentage int
		wantComplete   bool
	}{
		{
			name:     "no members is zero percent and never complete",
			members:  nil,
			minReady: 0,
		},
		{
			name: "all ready",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusActive, "yes", true),
			},
			minReady:       100,
			wantTotal:      2,
			wantReady:      2,
			wantPercentage: 100,
			wantComplete:   true,
		},
		{
			name: "response without confirmation does not count",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", false),
				member(model.MemberStatusActive, "yes", true),
			},
			minReady:       100,
			wantTotal:      2,
			wantReady:      1,
			wantPercentage: 50,
		},
		{
			name: "confirmation without response does not count",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "", true),
			},
			minReady:  100,
			wantTotal: 1,
		},
		{
			name: "dropped member excluded from both sides",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusDropped, "", false),
			},
			minReady:       100,
			wantTotal:      1,
			wantReady:      1,
			wantPercentage: 100,
			wantComplete:   true,
		},
		{
			name: "dropped ready member still excluded",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusDropped, "late", true),
			},
			minReady:       100,
			wantTotal:      1,
			wantReady:      1,
			wantPercentage: 100,
			wantComplete:   true,
		},
		{
			name: "rounding two of three",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusActive, "", false),
			},
			minReady:       100,
			wantTotal:      3,
			wantReady:      2,
			wantPercentage: 67,
		},
		{
			name: "lower bar reached",
			members: []model.SquadMember{
				member(model.MemberStatusActive, "in", true),
				member(model.MemberStatusActive, "", false),
			},
			minReady:       50,
			wantTotal:      2,
			wantReady:      1,
			wantPercentage: 50,
			wantComplete:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWarmUpProgress(tt.members, tt.minReady)
			if got.TotalMembers != tt.wantTotal {
				t.Errorf("TotalMembers = %d, want %d", got.TotalMembers, tt.wantTotal)
			}
			if got.ReadyMembers != tt.wantReady {
				t.Errorf("ReadyMembers = %d, want %d", got.ReadyMembers, tt.wantReady)
			}
			if got.Percentage != tt.wantPercentage {
				t.Errorf("Percentage = %d, want %d", got.Percentage, tt.wantPercentage)
			}
			if got.IsComplete != tt.wantComplete {
				t.Errorf("IsComplete = %v, want %v", got.IsComplete, tt.wantComplete)
			}
		})
	}
}

func TestComputeWarmUpProgressEmptyNeverComplete(t *testing.T) {
	// minReadyPercent of zero must not make an empty squad complete.
	got := ComputeWarmUpProgress([]model.SquadMember{}, 0)
	if got.Percentage != 0 || got.IsComplete {
		t.Errorf("empty squad: got percentage=%d complete=%v, want 0/false", got.Percentage, got.IsComplete)
	}
}
