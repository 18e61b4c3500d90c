package httpserver

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "gatherup-api/docs"
	"gatherup-api/internal/middleware"
	"gatherup-api/internal/monitor"
	monitorHTTP "gatherup-api/internal/monitor/delivery/http"
	monitorRepository "gatherup-api/internal/monitor/repository/postgre"
	monitorUC "gatherup-api/internal/monitor/usecase"
	notificationHTTP "gatherup-api/internal/notification/delivery/http"
	notificationRepository "gatherup-api/internal/notification/repository/postgre"
	notificationUC "gatherup-api/internal/notification/usecase"
	squadHTTP "gatherup-api/internal/squad/delivery/http"
	squadRepository "gatherup-api/internal/squad/repository/postgre"
	squadUC "gatherup-api/internal/squad/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.internal, srv.cors)
	srv.gin.Use(mw.Recovery(), mw.CORS())

	srv.gin.GET("/health", srv.health)
	srv.gin.GET("/live", srv.live)
	srv.gin.GET("/ready", srv.ready)
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	monitorRepo := monitorRepository.New(srv.l, srv.database)
	monitorUseCase := monitorUC.New(srv.l, monitorRepo, srv.mailer, srv.monitorThresholds())
	monitorHandler := monitorHTTP.New(srv.l, monitorUseCase)

	notificationRepo := notificationRepository.New(srv.l, srv.database)
	notificationUseCase := notificationUC.New(srv.l, notificationRepo)
	notificationHandler := notificationHTTP.New(srv.l, notificationUseCase)

	squadRepo := squadRepository.New(srv.l, srv.database)
	squadUseCase := squadUC.New(srv.l, squadRepo)
	squadHandler := squadHTTP.New(srv.l, squadUseCase)

	api := srv.gin.Group("/api/v1")
	notificationHandler.MapRoutes(api, mw)
	squadHandler.MapRoutes(api, mw)

	internal := srv.gin.Group("/internal/api/v1")
	monitorHandler.MapRoutes(internal, mw)

	return nil
}

// MonitorUseCase builds the monitor use case for the scheduler so
// scheduled and HTTP-triggered sweeps share the same semantics.
func (srv *HTTPServer) MonitorUseCase() monitor.UseCase {
	repo := monitorRepository.New(srv.l, srv.database)
	return monitorUC.New(srv.l, repo, srv.mailer, srv.monitorThresholds())
}

func (srv *HTTPServer) monitorThresholds() monitor.Thresholds {
	th := monitor.DefaultThresholds()
	if srv.thresholds.WarmupStalledHours > 0 {
		th.WarmupStalled = time.Duration(srv.thresholds.WarmupStalledHours) * time.Hour
	}
	if srv.thresholds.ReviewStalledHours > 0 {
		th.ReviewStalled = time.Duration(srv.thresholds.ReviewStalledHours) * time.Hour
	}
	if srv.thresholds.FirstResponseSLAHours > 0 {
		th.FirstResponseSLA = time.Duration(srv.thresholds.FirstResponseSLAHours) * time.Hour
	}
	if srv.thresholds.ResolutionSLAHours > 0 {
		th.ResolutionSLA = time.Duration(srv.thresholds.ResolutionSLAHours) * time.Hour
	}
	if srv.thresholds.SLALookbackHours > 0 {
		th.SLALookback = time.Duration(srv.thresholds.SLALookbackHours) * time.Hour
	}
	return th
}
