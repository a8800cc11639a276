package domain

import "time"

type InteractionType string

const (
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeMeeting InteractionType = "meeting"
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeNote    InteractionType = "note"
)

type InteractionDirection string

const (
	InteractionDirectionInbound  InteractionDirection = "inbound"
	InteractionDirectionOutbound InteractionDirection = "outbound"
	InteractionDirectionInternal InteractionDirection = "internal"
)

type InteractionStatus string

const (
	InteractionStatusScheduled InteractionStatus = "scheduled"
	InteractionStatusCompleted InteractionStatus = "completed"
	InteractionStatusCancelled InteractionStatus = "cancelled"
)

type Interaction struct {
	ID              string               `json:"id"`
	Type            InteractionType      `json:"interaction_type"`
	Direction       InteractionDirection `json:"direction"`
	Subject         string               `json:"subject"`
	Summary         *string              `json:"summary"`
	Description     *string              `json:"description"`
	AccountID       string               `json:"account_id"`
	ContactID       *string              `json:"contact_id"`
	DealID          *string              `json:"deal_id"`
	AssignedTo      *int                 `json:"assigned_to"`
	ScheduledAt     time.Time            `json:"scheduled_at"`
	DurationMinutes int                  `json:"duration_minutes"`
	Status          InteractionStatus    `json:"status"`
	Notes           *string              `json:"notes"`
	Outcome         *string              `json:"outcome"`
	CreatedBy       *int                 `json:"created_by"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
