package repository

import "time"

// AdmitBreachOptions identifies one breach marker.
type AdmitBreachOptions struct {
	EntityType string
	EntityID   string
	Category   string
	DetectedAt time.Time

	// Lookback, when positive, re-arms a marker whose last detection
	// is older than the window. Zero keeps the marker permanent.
	Lookback time.Duration
}

// NotificationRow is one in-app notification to insert.
type NotificationRow struct {
	RecipientID string
	Category    string
	Title       string
	Body        string
	EntityType  string
	EntityID    string
}

// CreateNotificationsOptions contains options for a batch insert.
type CreateNotificationsOptions struct {
	Rows []NotificationRow
}

// CreateAuditEventOptions contains options for appending one audit event.
type CreateAuditEventOptions struct {
	EventType  string
	EntityType string
	EntityID   string
	Metadata   map[string]any
	OccurredAt time.Time
}
