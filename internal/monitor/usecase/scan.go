package usecase

import (
	"fmt"
	"time"

	"gatherup-api/internal/lifecycle"
	"gatherup-api/internal/model"
	"gatherup-api/internal/monitor"
)

// classifySquad evaluates one squad against the warm-up thresholds.
// The elapsed clock anchors on the last status change, so reverting a
// squad to warming_up restarts its timer.
func classifySquad(sq model.Squad, th monitor.Thresholds, now time.Time) []monitor.Breach {
	if !lifecycle.IsInWarmUp(sq.Status) {
		return nil
	}

	elapsed := now.Sub(sq.StatusChangedAt)
	progress := lifecycle.ComputeWarmUpProgress(sq.Members, lifecycle.DefaultMinReadyPercent)

	var breaches []monitor.Breach
	switch sq.Status {
	case model.SquadStateWarmingUp:
		if elapsed >= th.WarmupStalled && !progress.IsComplete {
			breaches = append(breaches, monitor.Breach{
				EntityType: model.EntityTypeSquad,
				EntityID:   sq.ID,
				EntityName: sq.Name,
				Category:   monitor.CategoryWarmupStalled,
				DetectedAt: now,
				Elapsed:    elapsed,
				Title:      fmt.Sprintf("Squad warm-up stalled: %s", sq.Name),
				Body: fmt.Sprintf(
					"Squad %q has been warming up for %d hours without reaching readiness (%d/%d members ready, %d%%).",
					sq.Name, hours(elapsed), progress.ReadyMembers, progress.TotalMembers, progress.Percentage,
				),
				Metadata: map[string]any{
					"hours_stalled": hours(elapsed),
					"ready_members": progress.ReadyMembers,
					"total_members": progress.TotalMembers,
					"percentage":    progress.Percentage,
				},
			})
		}
	case model.SquadStateReadyForReview:
		if elapsed >= th.ReviewStalled {
			breaches = append(breaches, monitor.Breach{
				EntityType: model.EntityTypeSquad,
				EntityID:   sq.ID,
				EntityName: sq.Name,
				Category:   monitor.CategoryReviewStalled,
				DetectedAt: now,
				Elapsed:    elapsed,
				Title:      fmt.Sprintf("Squad awaiting review: %s", sq.Name),
				Body: fmt.Sprintf(
					"Squad %q has been waiting for admin review for %d hours.",
					sq.Name, hours(elapsed),
				),
				Metadata: map[string]any{
					"hours_stalled": hours(elapsed),
				},
			})
		}
	}

	return breaches
}

// classifyTicket evaluates one ticket against the SLA thresholds.
// Both SLAs anchor on the ticket creation time, so one old ticket can
// breach both categories in a single sweep.
func classifyTicket(t model.Ticket, th monitor.Thresholds, now time.Time) []monitor.Breach {
	if !t.IsOpen() {
		return nil
	}

	age := now.Sub(t.CreatedAt)

	var breaches []monitor.Breach
	if !t.HasFirstResponse() && age >= th.FirstResponseSLA {
		breaches = append(breaches, monitor.Breach{
			EntityType: model.EntityTypeTicket,
			EntityID:   t.ID,
			EntityName: t.Subject,
			Category:   monitor.CategoryFirstResponseSLA,
			DetectedAt: now,
			Elapsed:    age,
			Title:      fmt.Sprintf("Ticket first-response SLA breached: %s", t.Subject),
			Body: fmt.Sprintf(
				"Ticket %q has waited %d hours without a first response.",
				t.Subject, hours(age),
			),
			Metadata: map[string]any{
				"hours_open": hours(age),
			},
		})
	}
	if t.ResolvedAt == nil && age >= th.ResolutionSLA {
		breaches = append(breaches, monitor.Breach{
			EntityType: model.EntityTypeTicket,
			EntityID:   t.ID,
			EntityName: t.Subject,
			Category:   monitor.CategoryResolutionSLA,
			DetectedAt: now,
			Elapsed:    age,
			Title:      fmt.Sprintf("Ticket resolution SLA breached: %s", t.Subject),
			Body: fmt.Sprintf(
				"Ticket %q has been unresolved for %d hours.",
				t.Subject, hours(age),
			),
			Metadata: map[string]any{
				"hours_open": hours(age),
			},
		})
	}

	return breaches
}

func hours(d time.Duration) int {
	return int(d.Hours())
}

func auditEventType(entityType string) string {
	if entityType == model.EntityTypeTicket {
		return model.AuditEventTicketSLABreach
	}
	return model.AuditEventSquadStatusChange
}
