package http

import (
	"time"

	"gatherup-api/internal/monitor"
)

type sweepResp struct {
	Sweep     string              `json:"sweep"`
	Success   bool                `json:"success"`
	CheckedAt time.Time           `json:"checked_at"`
	Scanned   int                 `json:"scanned"`
	Counts    map[string]int      `json:"counts"`
	EntityIDs map[string][]string `json:"entity_ids"`
	Admitted  int                 `json:"admitted"`
	Notified  int                 `json:"notified"`
	EmailSent bool                `json:"email_sent"`
	Errors    []string            `json:"errors,omitempty"`
}

type runResp struct {
	Success bool        `json:"success"`
	Sweeps  []sweepResp `json:"sweeps"`
}

func newSweepResp(s monitor.SweepSummary) sweepResp {
	return sweepResp{
		Sweep:     s.Sweep,
		Success:   s.Success,
		CheckedAt: s.CheckedAt,
		Scanned:   s.Scanned,
		Counts:    s.Counts,
		EntityIDs: s.EntityIDs,
		Admitted:  s.Admitted,
		Notified:  s.Notified,
		EmailSent: s.EmailSent,
		Errors:    s.Errors,
	}
}

func newRunResp(out monitor.RunOutput) runResp {
	resp := runResp{
		Success: out.Success,
		Sweeps:  make([]sweepResp, len(out.Sweeps)),
	}
	for i, s := range out.Sweeps {
		resp.Sweeps[i] = newSweepResp(s)
	}
	return resp
}
