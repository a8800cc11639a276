package domain

import "time"

type TimelineEventType string

const (
	TimelineEventTypeInteraction TimelineEventType = "interaction"
	TimelineEventTypeTask        TimelineEventType = "task"
	TimelineEventTypeDeal        TimelineEventType = "deal"
	TimelineEventTypeContact     TimelineEventType = "contact"
	TimelineEventTypeAccount     TimelineEventType = "account"
	TimelineEventTypeDocument    TimelineEventType = "document"
	TimelineEventTypeEmail       TimelineEventType = "email"
	TimelineEventTypeSystem      TimelineEventType = "system"
)

type TimelineAction string

const (
	TimelineActionCreated   TimelineAction = "created"
	TimelineActionUpdated   TimelineAction = "updated"
	TimelineActionDeleted   TimelineAction = "deleted"
	TimelineActionCompleted TimelineAction = "completed"
	TimelineActionAssigned  TimelineAction = "assigned"
	TimelineActionMoved     TimelineAction = "moved"
	TimelineActionWon       TimelineAction = "won"
	TimelineActionLost      TimelineAction = "lost"
	TimelineActionUploaded  TimelineAction = "uploaded"
	TimelineActionSent      TimelineAction = "sent"
)

// TimelineEvent registra um evento cronológico do CRM. O caminho de
// aplicação de campos calculados (score/valor) nunca gera eventos aqui;
// só edições reais feitas por usuários.
type TimelineEvent struct {
	ID          string            `json:"id"`
	EventType   TimelineEventType `json:"event_type"`
	Action      TimelineAction    `json:"action"`
	Title       string            `json:"title"`
	Description *string           `json:"description"`
	UserID      *int              `json:"user_id"`
	AccountID   *string           `json:"account_id"`
	ContactID   *string           `json:"contact_id"`
	DealID      *string           `json:"deal_id"`
	Important   bool              `json:"is_important"`
	CreatedAt   time.Time         `json:"created_at"`
}
