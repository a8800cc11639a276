package domain

import "time"

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type TaskType string

const (
	TaskTypeCall     TaskType = "call"
	TaskTypeEmail    TaskType = "email"
	TaskTypeMeeting  TaskType = "meeting"
	TaskTypeFollowUp TaskType = "follow_up"
	TaskTypeResearch TaskType = "research"
	TaskTypeProposal TaskType = "proposal"
	TaskTypeOther    TaskType = "other"
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Type        TaskType     `json:"task_type"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	AssignedTo  int          `json:"assigned_to"`
	CreatedBy   *int         `json:"created_by"`
	AccountID   *string      `json:"account_id"`
	ContactID   *string      `json:"contact_id"`
	DealID      *string      `json:"deal_id"`
	DueDate     *time.Time   `json:"due_date"`
	CompletedAt *time.Time   `json:"completed_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Overdue indica se a tarefa está atrasada em relação ao prazo
func (t *Task) Overdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	if t.Status == TaskStatusCompleted || t.Status == TaskStatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}
