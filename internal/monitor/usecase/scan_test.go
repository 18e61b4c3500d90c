package usecase

import (
	"testing"
	"time"

	"gatherup-api/internal/model"
	"gatherup-api/internal/monitor"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func readyMember(confirmedAt time.Time) model.SquadMember {
	return model.SquadMember{
		Status:           model.MemberStatusActive,
		Response:         strPtr("in"),
		ReadyConfirmedAt: timePtr(confirmedAt),
	}
}

func TestClassifySquad(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	th := monitor.DefaultThresholds()

	tests := []struct {
		name      string
		squad     model.Squad
		wantCats  []string
		wantHours int
	}{
		{
			name: "warming up past threshold",
			squad: model.Squad{
				ID:              "sq-1",
				Name:            "Trailblazers",
				Status:          model.SquadStateWarmingUp,
				StatusChangedAt: now.Add(-25 * time.Hour),
				Members: []model.SquadMember{
					readyMember(now), {Status: model.MemberStatusActive},
				},
			},
			wantCats:  []string{monitor.CategoryWarmupStalled},
			wantHours: 25,
		},
		{
			name: "warming up under threshold",
			squad: model.Squad{
				Status:          model.SquadStateWarmingUp,
				StatusChangedAt: now.Add(-23 * time.Hour),
			},
			wantCats: nil,
		},
		{
			name: "warming up past threshold but fully ready",
			squad: model.Squad{
				Status:          model.SquadStateWarmingUp,
				StatusChangedAt: now.Add(-48 * time.Hour),
				Members:         []model.SquadMember{readyMember(now), readyMember(now)},
			},
			wantCats: nil,
		},
		{
			name: "ready for review past threshold",
			squad: model.Squad{
				ID:              "sq-2",
				Name:            "Pathfinders",
				Status:          model.SquadStateReadyForReview,
				StatusChangedAt: now.Add(-13 * time.Hour),
			},
			wantCats:  []string{monitor.CategoryReviewStalled},
			wantHours: 13,
		},
		{
			name: "ready for review under threshold",
			squad: model.Squad{
				Status:          model.SquadStateReadyForReview,
				StatusChangedAt: now.Add(-11 * time.Hour),
			},
			wantCats: nil,
		},
		{
			name: "non warm-up state ignored",
			squad: model.Squad{
				Status:          model.SquadStateActive,
				StatusChangedAt: now.Add(-100 * time.Hour),
			},
			wantCats: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifySquad(tt.squad, th, now)
			if len(got) != len(tt.wantCats) {
				t.Fatalf("got %d breaches, want %d", len(got), len(tt.wantCats))
			}
			for i, b := range got {
				if b.Category != tt.wantCats[i] {
					t.Errorf("breach %d category = %s, want %s", i, b.Category, tt.wantCats[i])
				}
				if b.EntityType != model.EntityTypeSquad {
					t.Errorf("breach %d entity type = %s, want squad", i, b.EntityType)
				}
				if hoursStalled, _ := b.Metadata["hours_stalled"].(int); hoursStalled != tt.wantHours {
					t.Errorf("breach %d hours_stalled = %v, want %d", i, b.Metadata["hours_stalled"], tt.wantHours)
				}
			}
		})
	}
}

func TestClassifyTicket(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	th := monitor.DefaultThresholds()

	tests := []struct {
		name     string
		ticket   model.Ticket
		wantCats []string
	}{
		{
			name: "fresh ticket is clean",
			ticket: model.Ticket{
				Status:    model.TicketStatusOpen,
				CreatedAt: now.Add(-1 * time.Hour),
			},
			wantCats: nil,
		},
		{
			name: "first response overdue",
			ticket: model.Ticket{
				Status:    model.TicketStatusOpen,
				CreatedAt: now.Add(-5 * time.Hour),
			},
			wantCats: []string{monitor.CategoryFirstResponseSLA},
		},
		{
			name: "responded in time, resolution overdue",
			ticket: model.Ticket{
				Status:          model.TicketStatusPending,
				CreatedAt:       now.Add(-30 * time.Hour),
				FirstResponseAt: timePtr(now.Add(-29 * time.Hour)),
			},
			wantCats: []string{monitor.CategoryResolutionSLA},
		},
		{
			name: "old unanswered ticket breaches both independently",
			ticket: model.Ticket{
				Status:    model.TicketStatusOpen,
				CreatedAt: now.Add(-30 * time.Hour),
			},
			wantCats: []string{monitor.CategoryFirstResponseSLA, monitor.CategoryResolutionSLA},
		},
		{
			name: "resolved ticket ignored",
			ticket: model.Ticket{
				Status:     model.TicketStatusResolved,
				CreatedAt:  now.Add(-100 * time.Hour),
				ResolvedAt: timePtr(now.Add(-1 * time.Hour)),
			},
			wantCats: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTicket(tt.ticket, th, now)
			if len(got) != len(tt.wantCats) {
				t.Fatalf("got %d breaches, want %d", len(got), len(tt.wantCats))
			}
			for i, b := range got {
				if b.Category != tt.wantCats[i] {
					t.Errorf("breach %d category = %s, want %s", i, b.Category, tt.wantCats[i])
				}
				if b.EntityType != model.EntityTypeTicket {
					t.Errorf("breach %d entity type = %s, want ticket", i, b.EntityType)
				}
			}
		})
	}
}
