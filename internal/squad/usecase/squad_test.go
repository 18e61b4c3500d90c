package usecase

import (
	"context"
	"testing"
	"time"

	"gatherup-api/internal/model"
	"gatherup-api/internal/squad"
	"gatherup-api/internal/squad/repository"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Info(ctx context.Context, arg ...any)                    {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Error(ctx context.Context, arg ...any)                   {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

type stubRepo struct {
	squad     model.Squad
	detailErr error
	updateErr error
	updated   *repository.UpdateStatusOptions
}

func (s *stubRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Squad, error) {
	if s.detailErr != nil {
		return model.Squad{}, s.detailErr
	}
	return s.squad, nil
}

func (s *stubRepo) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Squad, error) {
	if s.updateErr != nil {
		return model.Squad{}, s.updateErr
	}
	s.updated = &opts
	sq := s.squad
	sq.Status = opts.ToStatus
	return sq, nil
}

var adminScope = model.Scope{UserID: "adm-1", Role: model.RoleAdmin}

func warmingSquad() model.Squad {
	resp := "in"
	confirmed := time.Now()
	return model.Squad{
		ID:              "sq-1",
		Name:            "Trailblazers",
		Status:          model.SquadStateWarmingUp,
		StatusChangedAt: time.Now().Add(-2 * time.Hour),
		Members: []model.SquadMember{
			{Status: model.MemberStatusActive, Response: &resp, ReadyConfirmedAt: &confirmed},
			{Status: model.MemberStatusActive},
		},
	}
}

func TestDetail(t *testing.T) {
	repo := &stubRepo{squad: warmingSquad()}
	uc := &usecase{l: testLogger{}, repo: repo}

	out, err := uc.Detail(context.Background(), adminScope, "sq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Progress.Percentage != 50 {
		t.Errorf("progress = %d%%, want 50%%", out.Progress.Percentage)
	}
	if out.ShowInstructions {
		t.Error("warming_up squad must not show instructions")
	}
	if len(out.AvailableTransitions) == 0 {
		t.Error("warming_up squad should have available transitions")
	}
}

func TestDetailNotFound(t *testing.T) {
	repo := &stubRepo{detailErr: repository.ErrNotFound}
	uc := &usecase{l: testLogger{}, repo: repo}

	if _, err := uc.Detail(context.Background(), adminScope, "sq-404"); err != squad.ErrSquadNotFound {
		t.Errorf("err = %v, want ErrSquadNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		sc      model.Scope
		from    model.SquadState
		to      model.SquadState
		wantErr error
	}{
		{"valid forward", adminScope, model.SquadStateWarmingUp, model.SquadStateReadyForReview, nil},
		{"valid revert", adminScope, model.SquadStateReadyForReview, model.SquadStateWarmingUp, nil},
		{"approve", adminScope, model.SquadStateReadyForReview, model.SquadStateApproved, nil},
		{"skip a step", adminScope, model.SquadStateWarmingUp, model.SquadStateApproved, squad.ErrInvalidTransition},
		{"terminal state", adminScope, model.SquadStateArchived, model.SquadStateDraft, squad.ErrInvalidTransition},
		{"unknown status", adminScope, model.SquadStateWarmingUp, model.SquadState("limbo"), squad.ErrUnknownStatus},
		{"non-admin", model.Scope{UserID: "usr-1", Role: model.RoleMember}, model.SquadStateWarmingUp, model.SquadStateReadyForReview, squad.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sq := warmingSquad()
			sq.Status = tt.from
			repo := &stubRepo{squad: sq}
			uc := &usecase{l: testLogger{}, repo: repo}

			out, err := uc.UpdateStatus(context.Background(), tt.sc, squad.UpdateStatusInput{ID: sq.ID, Status: tt.to})
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if repo.updated != nil {
					t.Error("repository must not be updated on rejected transition")
				}
				return
			}
			if out.Squad.Status != tt.to {
				t.Errorf("status = %s, want %s", out.Squad.Status, tt.to)
			}
			if repo.updated == nil || repo.updated.FromStatus != tt.from {
				t.Error("update must be guarded by the previous status")
			}
		})
	}
}

func TestUpdateStatusLostRace(t *testing.T) {
	sq := warmingSquad()
	repo := &stubRepo{squad: sq, updateErr: repository.ErrStale}
	uc := &usecase{l: testLogger{}, repo: repo}

	_, err := uc.UpdateStatus(context.Background(), adminScope, squad.UpdateStatusInput{
		ID:     sq.ID,
		Status: model.SquadStateReadyForReview,
	})
	if err != squad.ErrInvalidTransition {
		t.Errorf("err = %v, want ErrInvalidTransition on lost race", err)
	}
}
