package mailer

import (
	"errors"

	"gatherup-api/pkg/log"
)

var (
	errHostRequired = errors.New("mailer: SMTP host is required")
	errFromRequired = errors.New("mailer: sender address is required")
)

// New creates a new SMTP mailer.
// Logger can be nil, but logging will be skipped if not provided.
func New(l log.Logger, cfg Config) (IMailer, error) {
	if cfg.Host == "" {
		return nil, errHostRequired
	}
	if cfg.From == "" {
		return nil, errFromRequired
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}

	return &implMailer{
		l:   l,
		cfg: cfg,
	}, nil
}
