package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/errors"
	"gatherup-api/pkg/response"
)

const healthCheckTimeout = 2 * time.Second

// health reports overall service health.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Healthy"
// @Router /health [GET]
func (srv *HTTPServer) health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// live reports process liveness.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Alive"
// @Router /live [GET]
func (srv *HTTPServer) live(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive"})
}

// ready reports readiness to serve traffic.
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "Ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [GET]
func (srv *HTTPServer) ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := srv.database.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.ready.PingContext: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database unreachable"))
		return
	}

	response.OK(c, gin.H{"status": "ready"})
}
