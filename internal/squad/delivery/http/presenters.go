package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gatherup-api/internal/model"
	"gatherup-api/internal/squad"
	pkgErrors "gatherup-api/pkg/errors"
)

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) processUpdateStatusRequest(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return updateStatusReq{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return req, nil
}

func (r updateStatusReq) toInput(id string) squad.UpdateStatusInput {
	return squad.UpdateStatusInput{
		ID:     id,
		Status: model.SquadState(r.Status),
	}
}

type memberResp struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Status           string     `json:"status"`
	IsReady          bool       `json:"is_ready"`
	ReadyConfirmedAt *time.Time `json:"ready_confirmed_at,omitempty"`
}

type progressResp struct {
	TotalMembers int  `json:"total_members"`
	ReadyMembers int  `json:"ready_members"`
	Percentage   int  `json:"percentage"`
	IsComplete   bool `json:"is_complete"`
}

type detailResp struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Status               string       `json:"status"`
	StatusChangedAt      time.Time    `json:"status_changed_at"`
	Members              []memberResp `json:"members"`
	Progress             progressResp `json:"progress"`
	AvailableTransitions []string     `json:"available_transitions"`
	ShowInstructions     bool         `json:"show_instructions"`
}

func newDetailResp(out squad.DetailOutput) detailResp {
	members := make([]memberResp, len(out.Squad.Members))
	for i, m := range out.Squad.Members {
		members[i] = memberResp{
			ID:               m.ID,
			UserID:           m.UserID,
			Status:           string(m.Status),
			IsReady:          m.IsReady(),
			ReadyConfirmedAt: m.ReadyConfirmedAt,
		}
	}

	transitions := make([]string, len(out.AvailableTransitions))
	for i, t := range out.AvailableTransitions {
		transitions[i] = string(t)
	}

	return detailResp{
		ID:              out.Squad.ID,
		Name:            out.Squad.Name,
		Status:          string(out.Squad.Status),
		StatusChangedAt: out.Squad.StatusChangedAt,
		Members:         members,
		Progress: progressResp{
			TotalMembers: out.Progress.TotalMembers,
			ReadyMembers: out.Progress.ReadyMembers,
			Percentage:   out.Progress.Percentage,
			IsComplete:   out.Progress.IsComplete,
		},
		AvailableTransitions: transitions,
		ShowInstructions:     out.ShowInstructions,
	}
}
