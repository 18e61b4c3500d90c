package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/internal/middleware"
)

// MapRoutes registers the sweep trigger endpoints. The group is
// expected to be guarded by the internal key middleware; sweeps are
// operational endpoints, never exposed to end users.
func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	sweeps := r.Group("/monitor/sweeps", mw.InternalKey())
	{
		sweeps.POST("", h.RunAll)
		sweeps.POST("/squads", h.RunSquadSweep)
		sweeps.POST("/tickets", h.RunTicketSweep)
	}
}
