package http

import (
	"gatherup-api/internal/monitor"
	pkgLog "gatherup-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc monitor.UseCase
}

func New(l pkgLog.Logger, uc monitor.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
