package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"gatherup-api/internal/middleware"
	pkgLog "gatherup-api/pkg/log"
	"gatherup-api/pkg/mailer"
	"gatherup-api/pkg/scope"
)

// Config holds the HTTP server dependencies and settings.
type Config struct {
	Port        int
	Mode        string
	JWTSecret   string
	InternalKey string

	Database *sql.DB
	Mailer   mailer.IMailer
	CORS     middleware.CORSConfig

	MonitorThresholds MonitorThresholds
}

// MonitorThresholds mirrors the monitor configuration so the server
// can build the use case without importing the config package.
type MonitorThresholds struct {
	WarmupStalledHours    int
	ReviewStalledHours    int
	FirstResponseSLAHours int
	ResolutionSLAHours    int
	SLALookbackHours      int
}

type HTTPServer struct {
	l          pkgLog.Logger
	gin        *gin.Engine
	port       int
	database   *sql.DB
	mailer     mailer.IMailer
	jwtManager scope.Manager
	internal   string
	cors       middleware.CORSConfig
	thresholds MonitorThresholds
}

func New(l pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Database == nil {
		return nil, errors.New("database is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}

	if cfg.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	return &HTTPServer{
		l:          l,
		gin:        gin.New(),
		port:       cfg.Port,
		database:   cfg.Database,
		mailer:     cfg.Mailer,
		jwtManager: scope.New(cfg.JWTSecret),
		internal:   cfg.InternalKey,
		cors:       cfg.CORS,
		thresholds: cfg.MonitorThresholds,
	}, nil
}
