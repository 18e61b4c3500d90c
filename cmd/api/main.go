package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"gatherup-api/config"
	"gatherup-api/config/postgre"
	"gatherup-api/internal/httpserver"
	"gatherup-api/internal/middleware"
	"gatherup-api/internal/scheduler"
	"gatherup-api/pkg/log"
	"gatherup-api/pkg/mailer"
)

// @Name GatherUp API
// @description Operational monitor and lifecycle API for GatherUp squads and support tickets.
// @version 1
// @host localhost:8080
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Email is optional. Without an SMTP host the monitor still writes
	// in-app notifications and audit events.
	var mailerClient mailer.IMailer
	if cfg.SMTP.Host != "" {
		mailerClient, err = mailer.New(logger, mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize mailer: ", err)
			return
		}
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		JWTSecret:   cfg.JWT.SecretKey,
		InternalKey: cfg.Internal.APIKey,
		Database:    postgresDB,
		Mailer:      mailerClient,
		CORS:        middleware.CORSConfig{AllowedOrigins: cfg.CORS.AllowedOrigins},
		MonitorThresholds: httpserver.MonitorThresholds{
			WarmupStalledHours:    cfg.Monitor.WarmupStalledHours,
			ReviewStalledHours:    cfg.Monitor.ReviewStalledHours,
			FirstResponseSLAHours: cfg.Monitor.FirstResponseSLAHours,
			ResolutionSLAHours:    cfg.Monitor.ResolutionSLAHours,
			SLALookbackHours:      cfg.Monitor.SLALookbackHours,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if cfg.Monitor.SchedulerOn {
		sched := scheduler.New(logger, httpServer.MonitorUseCase(), scheduler.Config{
			SquadSweepSpec:  cfg.Monitor.SquadSweepSpec,
			TicketSweepSpec: cfg.Monitor.TicketSweepSpec,
		})
		if err := sched.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start scheduler: ", err)
			return
		}
		defer sched.Stop()
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
