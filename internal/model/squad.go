package model

import "time"

// SquadState is the lifecycle state of a squad.
// The transition table lives in internal/lifecycle.
type SquadState string

const (
	SquadStateDraft          SquadState = "draft"
	SquadStateConfirmed      SquadState = "confirmed"
	SquadStateWarmingUp      SquadState = "warming_up"
	SquadStateReadyForReview SquadState = "ready_for_review"
	SquadStateApproved       SquadState = "approved"
	SquadStateActive         SquadState = "active"
	SquadStateCompleted      SquadState = "completed"
	SquadStateCancelled      SquadState = "cancelled"
	SquadStateArchived       SquadState = "archived"
)

// MemberStatus is the per-member lifecycle status inside a squad.
type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusDropped MemberStatus = "dropped"
)

// SquadMember represents one member of a squad during warm-up.
// A member is counted as ready only when both a response and a
// readiness confirmation are present.
type SquadMember struct {
	ID               string       `json:"id"`
	SquadID          string       `json:"squad_id"`
	UserID           string       `json:"user_id"`
	Status           MemberStatus `json:"status"`
	Response         *string      `json:"response,omitempty"`
	ReadyConfirmedAt *time.Time   `json:"ready_confirmed_at,omitempty"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// IsDropped reports whether the member left the squad.
func (m SquadMember) IsDropped() bool {
	return m.Status == MemberStatusDropped
}

// IsReady reports whether the member finished warm-up. Either field
// alone is insufficient.
func (m SquadMember) IsReady() bool {
	return m.Response != nil && *m.Response != "" && m.ReadyConfirmedAt != nil
}

// Squad represents a squad entity in the domain layer.
type Squad struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Status          SquadState    `json:"status"`
	StatusChangedAt time.Time     `json:"status_changed_at"`
	Members         []SquadMember `json:"members,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DeletedAt       *time.Time    `json:"deleted_at,omitempty"`
}
