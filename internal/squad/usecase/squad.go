package usecase

import (
	"context"

	"gatherup-api/internal/lifecycle"
	"gatherup-api/internal/model"
	"gatherup-api/internal/squad"
	"gatherup-api/internal/squad/repository"
)

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (squad.DetailOutput, error) {
	sq, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return squad.DetailOutput{}, squad.ErrSquadNotFound
		}
		uc.l.Errorf(ctx, "internal.squad.usecase.Detail: %v", err)
		return squad.DetailOutput{}, err
	}

	return newDetailOutput(sq), nil
}

func (uc *usecase) UpdateStatus(ctx context.Context, sc model.Scope, ip squad.UpdateStatusInput) (squad.DetailOutput, error) {
	if !sc.IsAdmin() {
		return squad.DetailOutput{}, squad.ErrPermissionDenied
	}

	if !lifecycle.IsKnownState(ip.Status) {
		return squad.DetailOutput{}, squad.ErrUnknownStatus
	}

	sq, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return squad.DetailOutput{}, squad.ErrSquadNotFound
		}
		uc.l.Errorf(ctx, "internal.squad.usecase.UpdateStatus.Detail: %v", err)
		return squad.DetailOutput{}, err
	}

	if !lifecycle.IsValidTransition(sq.Status, ip.Status) {
		return squad.DetailOutput{}, squad.ErrInvalidTransition
	}

	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:         ip.ID,
		FromStatus: sq.Status,
		ToStatus:   ip.Status,
	})
	if err != nil {
		if err == repository.ErrStale {
			// Another transition moved the squad first.
			return squad.DetailOutput{}, squad.ErrInvalidTransition
		}
		uc.l.Errorf(ctx, "internal.squad.usecase.UpdateStatus: %v", err)
		return squad.DetailOutput{}, err
	}

	return newDetailOutput(updated), nil
}

func newDetailOutput(sq model.Squad) squad.DetailOutput {
	return squad.DetailOutput{
		Squad:                sq,
		Progress:             lifecycle.ComputeWarmUpProgress(sq.Members, lifecycle.DefaultMinReadyPercent),
		AvailableTransitions: lifecycle.AvailableTransitions(sq.Status),
		ShowInstructions:     lifecycle.ShouldShowInstructions(sq.Status),
	}
}
