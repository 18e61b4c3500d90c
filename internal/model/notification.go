package model

import "time"

// Entity types carried on notifications and audit events.
const (
	EntityTypeSquad  = "squad"
	EntityTypeTicket = "ticket"
)

// Notification is one persisted in-app notification row.
// EntityType and EntityID are structured columns so consumers never
// have to parse the entity back out of the body text.
type Notification struct {
	ID          string     `json:"id"`
	RecipientID string     `json:"recipient_id"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	EntityType  string     `json:"entity_type"`
	EntityID    string     `json:"entity_id"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsRead reports whether the recipient opened the notification.
func (n Notification) IsRead() bool {
	return n.ReadAt != nil
}
