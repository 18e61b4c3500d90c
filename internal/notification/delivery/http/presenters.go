package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"gatherup-api/internal/model"
	"gatherup-api/internal/notification"
	pkgErrors "gatherup-api/pkg/errors"
	"gatherup-api/pkg/paginator"
)

type getReq struct {
	UnreadOnly bool   `form:"unread_only"`
	Category   string `form:"category"`
	paginator.PaginateQuery
}

func (h *Handler) processGetRequest(c *gin.Context) (getReq, error) {
	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return getReq{}, pkgErrors.NewHTTPError(400, "Invalid query parameters")
	}
	return req, nil
}

func (r getReq) toInput() notification.GetInput {
	return notification.GetInput{
		Filter: notification.Filter{
			UnreadOnly: r.UnreadOnly,
			Category:   r.Category,
		},
		PaginateQuery: r.PaginateQuery,
	}
}

type notificationResp struct {
	ID         string     `json:"id"`
	Category   string     `json:"category"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	EntityType string     `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type getResp struct {
	Items     []notificationResp          `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:         n.ID,
		Category:   n.Category,
		Title:      n.Title,
		Body:       n.Body,
		EntityType: n.EntityType,
		EntityID:   n.EntityID,
		ReadAt:     n.ReadAt,
		CreatedAt:  n.CreatedAt,
	}
}

func newGetResp(out notification.GetOutput) getResp {
	items := make([]notificationResp, len(out.Notifications))
	for i, n := range out.Notifications {
		items[i] = newNotificationResp(n)
	}
	return getResp{
		Items:     items,
		Paginator: out.Paginator.ToResponse(),
	}
}
