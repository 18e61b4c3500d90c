package lifecycle

import (
	"math"

	"gatherup-api/internal/model"
)

// DefaultMinReadyPercent is the readiness bar for leaving warm-up.
const DefaultMinReadyPercent = 100

// WarmUpProgress summarizes a squad's warm-up readiness.
type WarmUpProgress struct {
	TotalMembers int  `json:"total_members"`
	ReadyMembers int  `json:"ready_members"`
	Percentage   int  `json:"percentage"`
	IsComplete   bool `json:"is_complete"`
}

// ComputeWarmUpProgress computes readiness over the squad's members.
// Dropped members are excluded from both numerator and denominator so
// a member leaving cannot permanently block the squad from 100%. A
// member is ready only when both response and confirmation are set.
// An empty squad is 0% and never complete.
func ComputeWarmUpProgress(members []model.SquadMember, minReadyPercent int) WarmUpProgress {
	var total, ready int
	for _, m := range members {
		if m.IsDropped() {
			continue
		}
		total++
		if m.IsReady() {
			ready++
		}
	}

	progress := WarmUpProgress{
		TotalMembers: total,
		ReadyMembers: ready,
	}
	if total == 0 {
		return progress
	}

	progress.Percentage = int(math.Round(float64(ready) / float64(total) * 100))
	progress.IsComplete = progress.Percentage >= minReadyPercent
	return progress
}
