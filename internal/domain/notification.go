package domain

import "time"

type NotificationType string

const (
	NotificationTypeTask        NotificationType = "task"
	NotificationTypeDeal        NotificationType = "deal"
	NotificationTypeInteraction NotificationType = "interaction"
	NotificationTypeMention     NotificationType = "mention"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeSystem      NotificationType = "system"
	NotificationTypeOther       NotificationType = "other"
)

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityNormal NotificationPriority = "normal"
	NotificationPriorityHigh   NotificationPriority = "high"
	NotificationPriorityUrgent NotificationPriority = "urgent"
)

type Notification struct {
	ID        string               `json:"id"`
	Recipient int                  `json:"recipient"`
	Type      NotificationType     `json:"notification_type"`
	Priority  NotificationPriority `json:"priority"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	ActionURL *string              `json:"action_url"`
	Read      bool                 `json:"is_read"`
	ReadAt    *time.Time           `json:"read_at"`
	CreatedAt time.Time            `json:"created_at"`
}
