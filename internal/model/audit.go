package model

import "time"

// Audit event types written by the monitor.
const (
	AuditEventSquadStatusChange = "squad_status_change"
	AuditEventTicketSLABreach   = "ticket_sla_breach"
)

// AuditEvent is one append-only audit trail row. Rows are never
// updated or deleted by this service.
type AuditEvent struct {
	ID         string         `json:"id"`
	EventType  string         `json:"event_type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
