package usecase

import (
	"gatherup-api/internal/squad"
	"gatherup-api/internal/squad/repository"
	pkgLog "gatherup-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) squad.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
