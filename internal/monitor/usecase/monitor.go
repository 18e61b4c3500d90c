package usecase

import (
	"context"
	"fmt"
	"time"

	"gatherup-api/internal/model"
	"gatherup-api/internal/monitor"
	"gatherup-api/internal/monitor/repository"
)

func (uc *usecase) RunSquadSweep(ctx context.Context) (monitor.SweepSummary, error) {
	now := uc.clock()
	summary := monitor.NewSweepSummary(monitor.SweepSquadWarmUp, now)

	squads, err := uc.repo.ListWarmUpSquads(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.RunSquadSweep.ListWarmUpSquads: %v", err)
		summary.AddError(fmt.Sprintf("scan squads: %v", err))
		return summary, monitor.ErrScanFailed
	}
	summary.Scanned = len(squads)

	var breaches []monitor.Breach
	for _, sq := range squads {
		breaches = append(breaches, classifySquad(sq, uc.thresholds, now)...)
	}

	// Squad markers are permanent, so a stalled squad alerts once per
	// (squad, category) until an operator clears the marker.
	admitted := uc.admit(ctx, &summary, breaches, 0)
	uc.fanout(ctx, &summary, admitted)

	summary.Success = true
	return summary, nil
}

func (uc *usecase) RunTicketSweep(ctx context.Context) (monitor.SweepSummary, error) {
	now := uc.clock()
	summary := monitor.NewSweepSummary(monitor.SweepTicketSLA, now)

	tickets, err := uc.repo.ListOpenTickets(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.RunTicketSweep.ListOpenTickets: %v", err)
		summary.AddError(fmt.Sprintf("scan tickets: %v", err))
		return summary, monitor.ErrScanFailed
	}
	summary.Scanned = len(tickets)

	var breaches []monitor.Breach
	for _, t := range tickets {
		breaches = append(breaches, classifyTicket(t, uc.thresholds, now)...)
	}

	// Ticket markers re-arm after the lookback window so a ticket that
	// stays breached keeps reminding once per window.
	admitted := uc.admit(ctx, &summary, breaches, uc.thresholds.SLALookback)
	uc.fanout(ctx, &summary, admitted)

	summary.Success = true
	return summary, nil
}

func (uc *usecase) RunAll(ctx context.Context) (monitor.RunOutput, error) {
	out := monitor.RunOutput{Success: true}

	squadSummary, squadErr := uc.RunSquadSweep(ctx)
	out.Sweeps = append(out.Sweeps, squadSummary)

	ticketSummary, ticketErr := uc.RunTicketSweep(ctx)
	out.Sweeps = append(out.Sweeps, ticketSummary)

	if squadErr != nil || ticketErr != nil {
		out.Success = false
		if squadErr != nil {
			return out, squadErr
		}
		return out, ticketErr
	}

	return out, nil
}

// admit pushes every classified breach through the dedup gate and
// writes the audit trail for the ones that came out new. A gate or
// audit failure for one breach never aborts the rest of the sweep.
func (uc *usecase) admit(ctx context.Context, summary *monitor.SweepSummary, breaches []monitor.Breach, lookback time.Duration) []monitor.Breach {
	var admitted []monitor.Breach
	for _, b := range breaches {
		summary.Record(b)

		ok, err := uc.repo.AdmitBreach(ctx, repository.AdmitBreachOptions{
			EntityType: b.EntityType,
			EntityID:   b.EntityID,
			Category:   b.Category,
			DetectedAt: b.DetectedAt,
			Lookback:   lookback,
		})
		if err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.admit.AdmitBreach: %v", err)
			summary.AddError(fmt.Sprintf("dedup %s/%s %s: %v", b.EntityType, b.EntityID, b.Category, err))
			continue
		}
		if !ok {
			continue
		}

		if err := uc.repo.CreateAuditEvent(ctx, repository.CreateAuditEventOptions{
			EventType:  auditEventType(b.EntityType),
			EntityType: b.EntityType,
			EntityID:   b.EntityID,
			Metadata:   b.Metadata,
			OccurredAt: b.DetectedAt,
		}); err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.admit.CreateAuditEvent: %v", err)
			summary.AddError(fmt.Sprintf("audit %s/%s %s: %v", b.EntityType, b.EntityID, b.Category, err))
		}

		admitted = append(admitted, b)
	}

	summary.Admitted = len(admitted)
	return admitted
}

// fanout delivers admitted breaches to every admin principal: one
// notification row per breach per admin, plus a single digest email
// for the whole sweep. Email failure is reported in the summary but
// never fails the sweep; the in-app rows are already written.
func (uc *usecase) fanout(ctx context.Context, summary *monitor.SweepSummary, breaches []monitor.Breach) {
	if len(breaches) == 0 {
		return
	}

	admins, err := uc.repo.ListAdmins(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.fanout.ListAdmins: %v", err)
		summary.AddError(fmt.Sprintf("resolve admins: %v", err))
		return
	}
	if len(admins) == 0 {
		uc.l.Warnf(ctx, "internal.monitor.usecase.fanout: no admin recipients, skipping delivery")
		return
	}

	for _, b := range breaches {
		rows := make([]repository.NotificationRow, len(admins))
		for i, a := range admins {
			rows[i] = repository.NotificationRow{
				RecipientID: a.ID,
				Category:    b.Category,
				Title:       b.Title,
				Body:        b.Body,
				EntityType:  b.EntityType,
				EntityID:    b.EntityID,
			}
		}

		n, err := uc.repo.CreateNotifications(ctx, repository.CreateNotificationsOptions{Rows: rows})
		if err != nil {
			uc.l.Errorf(ctx, "internal.monitor.usecase.fanout.CreateNotifications: %v", err)
			summary.AddError(fmt.Sprintf("notify %s/%s %s: %v", b.EntityType, b.EntityID, b.Category, err))
			continue
		}
		summary.Notified += n
	}

	uc.sendDigest(ctx, summary, admins, breaches)
}

func (uc *usecase) sendDigest(ctx context.Context, summary *monitor.SweepSummary, admins []model.User, breaches []monitor.Breach) {
	if uc.mailer == nil {
		uc.l.Warnf(ctx, "internal.monitor.usecase.sendDigest: mailer not configured, skipping digest email")
		return
	}

	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		if a.Email != "" {
			recipients = append(recipients, a.Email)
		}
	}
	if len(recipients) == 0 {
		uc.l.Warnf(ctx, "internal.monitor.usecase.sendDigest: no admin email addresses, skipping digest email")
		return
	}

	msg := buildDigest(summary.Sweep, recipients, breaches)
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "internal.monitor.usecase.sendDigest.Send: %v", err)
		summary.AddError(fmt.Sprintf("digest email: %v", err))
		return
	}

	summary.EmailSent = true
}
