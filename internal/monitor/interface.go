package monitor

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// RunSquadSweep scans warm-up phase squads for stalled progress.
	RunSquadSweep(ctx context.Context) (SweepSummary, error)
	// RunTicketSweep scans open support tickets for SLA breaches.
	RunTicketSweep(ctx context.Context) (SweepSummary, error)
	// RunAll executes every sweep and aggregates their summaries.
	RunAll(ctx context.Context) (RunOutput, error)
}
