package models

import "time"

// NotificationKind classifies the urgency of a notification
type NotificationKind string

const (
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindWarning NotificationKind = "warning"
	NotificationKindUrgent  NotificationKind = "urgent"
	NotificationKindSystem  NotificationKind = "system"
)

// NotificationStatus tracks whether the recipient has read the notification
type NotificationStatus string

const (
	NotificationStatusSent NotificationStatus = "sent"
	NotificationStatusRead NotificationStatus = "read"
)

// Notification is produced by the sweep jobs as a side effect and never
// mutated by the engine afterwards.
type Notification struct {
	ID        int64              `json:"id"`
	UserID    int64              `json:"user_id"`
	UnitID    *int64             `json:"unit_id,omitempty"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Kind      NotificationKind   `json:"kind"`
	Status    NotificationStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}
