package monitor

import "time"

// Sweep names, used in summaries and logs.
const (
	SweepSquadWarmUp = "squad_warmup"
	SweepTicketSLA   = "ticket_sla"
)

// Breach categories. An entity can breach several categories in the
// same sweep; each carries its own dedup key and audit event.
const (
	CategoryWarmupStalled    = "warmup_stalled"
	CategoryReviewStalled    = "review_stalled"
	CategoryFirstResponseSLA = "first_response_sla"
	CategoryResolutionSLA    = "resolution_sla"
)

// Thresholds holds the configured durations for every category.
// Squad categories anchor on the last state change; ticket categories
// anchor on the ticket creation time.
type Thresholds struct {
	WarmupStalled    time.Duration
	ReviewStalled    time.Duration
	FirstResponseSLA time.Duration
	ResolutionSLA    time.Duration

	// SLALookback is the rolling dedup window for ticket categories.
	// Squad categories are marked permanently instead.
	SLALookback time.Duration
}

// DefaultThresholds returns the deploy-time defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WarmupStalled:    24 * time.Hour,
		ReviewStalled:    12 * time.Hour,
		FirstResponseSLA: 4 * time.Hour,
		ResolutionSLA:    24 * time.Hour,
		SLALookback:      24 * time.Hour,
	}
}

// Breach is one classified threshold violation.
type Breach struct {
	EntityType string
	EntityID   string
	EntityName string
	Category   string
	DetectedAt time.Time
	Elapsed    time.Duration
	Title      string
	Body       string
	Metadata   map[string]any
}

// SweepSummary is the machine-readable result of one sweep.
type SweepSummary struct {
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

// NewSweepSummary initializes a summary for one sweep run.
func NewSweepSummary(sweep string, checkedAt time.Time) SweepSummary {
	return SweepSummary{
		Sweep:     sweep,
		CheckedAt: checkedAt,
		Counts:    make(map[string]int),
		EntityIDs: make(map[string][]string),
	}
}

// Record counts one classified breach in the summary.
func (s *SweepSummary) Record(b Breach) {
	s.Counts[b.Category]++
	s.EntityIDs[b.Category] = append(s.EntityIDs[b.Category], b.EntityID)
}

// AddError appends a non-fatal error to the summary.
func (s *SweepSummary) AddError(msg string) {
	s.Errors = append(s.Errors, msg)
}

// RunOutput aggregates the summaries of a combined run.
type RunOutput struct {
	Success bool           `json:"success"`
	Sweeps  []SweepSummary `json:"sweeps"`
}
