package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/internal/middleware"
)

func (h *Handler) MapRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	notifications := r.Group("/notifications", mw.Auth())
	{
		notifications.GET("", h.Get)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}
