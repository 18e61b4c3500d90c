package model

import "time"

// TicketStatus is the lifecycle status of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusResolved TicketStatus = "resolved"
	TicketStatusClosed   TicketStatus = "closed"
)

// Ticket represents a support ticket in the domain layer.
// FirstResponseAt and ResolvedAt stay nil until the corresponding
// event happens; the SLA monitor anchors on CreatedAt.
type Ticket struct {
	ID              string       `json:"id"`
	Subject         string       `json:"subject"`
	RequesterID     string       `json:"requester_id"`
	Status          TicketStatus `json:"status"`
	FirstResponseAt *time.Time   `json:"first_response_at,omitempty"`
	ResolvedAt      *time.Time   `json:"resolved_at,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// IsOpen reports whether the ticket still needs agent attention.
func (t Ticket) IsOpen() bool {
	return t.Status == TicketStatusOpen || t.Status == TicketStatusPending
}

// HasFirstResponse reports whether an agent ever responded.
func (t Ticket) HasFirstResponse() bool {
	return t.FirstResponseAt != nil
}
