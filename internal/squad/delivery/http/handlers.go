package http

import (
	"github.com/gin-gonic/gin"

	"gatherup-api/pkg/response"
	"gatherup-api/pkg/scope"
)

// Detail returns one squad with its lifecycle view.
// @Summary Get squad detail
// @Description Returns the squad, its warm-up progress and the transitions currently allowed.
// @Tags Squad
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Success 200 {object} response.Resp "Success"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/v1/squads/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, scope.NewScope(payload), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "internal.squad.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailResp(out))
}

// UpdateStatus moves a squad along its lifecycle.
// @Summary Update squad status
// @Description Applies a lifecycle transition. Only adjacent transitions are accepted.
// @Tags Squad
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Squad ID"
// @Param body body updateStatusReq true "Target status"
// @Success 200 {object} response.Resp "Success"
// @Failure 400 {object} response.Resp "Invalid transition"
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Failure 404 {object} response.Resp "Not found"
// @Router /api/v1/squads/{id}/status [PATCH]
func (h *Handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	payload, ok := scope.GetPayloadFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateStatusRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "internal.squad.delivery.http.UpdateStatus.processUpdateStatusRequest: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.UpdateStatus(ctx, scope.NewScope(payload), req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "internal.squad.delivery.http.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDetailResp(out))
}
