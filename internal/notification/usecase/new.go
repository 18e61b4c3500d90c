package usecase

import (
	"gatherup-api/internal/notification"
	"gatherup-api/internal/notification/repository"
	pkgLog "gatherup-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

func New(l pkgLog.Logger, repo repository.Repository) notification.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
	}
}
