package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/internal/middleware"
)

func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	squads := r.Group("/squads", mw.Auth())
	{
		squads.GET("/:id", h.Detail)
		squads.PATCH("/:id/status", h.UpdateStatus)
	}
}
