package middleware

import (
	pkgLog "gatherup-api/pkg/log"
	"gatherup-api/pkg/scope"
)

type Middleware struct {
	l           pkgLog.Logger
	jwtManager  scope.Manager
	internalKey string
	corsConfig  CORSConfig
}

func New(l pkgLog.Logger, jwtManager scope.Manager, internalKey string, corsConfig CORSConfig) Middleware {
	return Middleware{
		l:           l,
		jwtManager:  jwtManager,
		internalKey: internalKey,
		corsConfig:  corsConfig,
	}
}
