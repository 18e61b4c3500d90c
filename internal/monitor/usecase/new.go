package usecase

import (
	"time"

	"gatherup-api/internal/monitor"
	"gatherup-api/internal/monitor/repository"
	pkgLog "gatherup-api/pkg/log"
	"gatherup-api/pkg/mailer"
)

type usecase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	mailer     mailer.IMailer
	thresholds monitor.Thresholds
	clock      func() time.Time
}

// New builds the monitor use case. A nil mailer disables the digest
// email while keeping in-app notifications working.
func New(l pkgLog.Logger, repo repository.Repository, m mailer.IMailer, thresholds monitor.Thresholds) monitor.UseCase {
	return &usecase{
		l:          l,
		repo:       repo,
		mailer:     m,
		thresholds: thresholds,
		clock:      time.Now,
	}
}
