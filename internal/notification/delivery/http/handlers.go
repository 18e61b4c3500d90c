package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/response"
	"gatherup-api/pkg/scope"
)

// Get lists the caller's notifications.
// @Summary List notifications
// @Description Returns the caller's notifications, newest first.
// @Tags Notification
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param unread_only query bool false "Only unread notifications"
// @Param category query string false "Filter by category"
// @Success 200 {object} response.Resp "Success"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/v1/notifications [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processGetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.Get.processGetRequest: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.Get(ctx, scope.NewScope(payload), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newGetResp(out))
}

// MarkRead marks one of the caller's notifications as read.
// @Summary Mark a notification read
// @Description Marks the notification as read. Reading twice keeps the original read time.
// @Tags Notification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Resp "Success"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/v1/notifications/{id}/read [PATCH]
func (h *Handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	notif, err := h.uc.MarkRead(ctx, scope.NewScope(payload), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.notification.delivery.http.MarkRead: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newNotificationResp(notif))
}
