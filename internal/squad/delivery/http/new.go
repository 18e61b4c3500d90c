package http

import (
	"gatherup-api/internal/squad"
	pkgLog "gatherup-api/pkg/log"
)

type Handler struct {
	l  pkgLog.Logger
	uc squad.UseCase
}

func New(l pkgLog.Logger, uc squad.UseCase) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
	}
}
