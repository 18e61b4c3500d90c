package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/response"
)

// RunAll triggers every monitor sweep.
// @Summary Run all monitor sweeps
// @Description Runs the squad warm-up and ticket SLA sweeps and returns their summaries.
// @Tags Monitor
// @Produce json
// @Param X-Internal-Key header string true "Internal API key"
// @Success 200 {object} response.Resp "Success"
// @Failure 500 {object} response.Resp "Scan failure"
// @Router /internal/api/v1/monitor/sweeps [POST]
func (h *Handler) RunAll(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.RunAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.RunAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRunResp(out))
}

// RunSquadSweep triggers the squad warm-up sweep.
// @Summary Run the squad warm-up sweep
// @Description Scans warm-up phase squads for stalled progress and notifies admins.
// @Tags Monitor
// @Produce json
// @Param X-Internal-Key header string true "Internal API key"
// @Success 200 {object} response.Resp "Success"
// @Failure 500 {object} response.Resp "Scan failure"
// @Router /internal/api/v1/monitor/sweeps/squads [POST]
func (h *Handler) RunSquadSweep(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.RunSquadSweep(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.RunSquadSweep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSweepResp(summary))
}

// RunTicketSweep triggers the ticket SLA sweep.
// @Summary Run the ticket SLA sweep
// @Description Scans open tickets for SLA breaches and notifies admins.
// @Tags Monitor
// @Produce json
// @Param X-Internal-Key header string true "Internal API key"
// @Success 200 {object} response.Resp "Success"
// @Failure 500 {object} response.Resp "Scan failure"
// @Router /internal/api/v1/monitor/sweeps/tickets [POST]
func (h *Handler) RunTicketSweep(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.RunTicketSweep(ctx)
	if err != nil {
		h.l.Errorf(ctx, "internal.monitor.delivery.http.RunTicketSweep: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSweepResp(summary))
}
