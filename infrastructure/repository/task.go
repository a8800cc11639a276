package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const tasksTable = "tasks"

type TaskRepository interface {
	CreateTask(task *domain.Task) (*domain.Task, error)
	UpdateTask(task *domain.Task) error
	GetTaskByID(id string, scope domain.Scope) (*domain.Task, error)
	ListTasks(scope domain.Scope) ([]*domain.Task, error)
	ListTasksByDeal(dealID string) ([]*domain.Task, error)
	ListOverdueTasks(scope domain.Scope, now time.Time) ([]*domain.Task, error)
	ListTasksDueBetween(from, to time.Time) ([]*domain.Task, error)
	DeleteTask(id string) error
	CountTasksByStatus(scope domain.Scope) (map[domain.TaskStatus]int, error)
}

type taskRepository struct {
	conn *postgres.Connection
}

func NewTaskRepository(conn *postgres.Connection) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

const taskColumns = "id, title, description, task_type, priority, status, assigned_to, created_by, account_id, contact_id, deal_id, due_date, completed_at, created_at, updated_at"

func (r *taskRepository) CreateTask(task *domain.Task) (*domain.Task, error) {
	if task.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da tarefa: %w", err)
		}
		task.ID = id
	}

	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}

	queryBuilder := squirrel.
		Insert(tasksTable).
		Columns(
			"id", "title", "description", "task_type", "priority", "status",
			"assigned_to", "created_by", "account_id", "contact_id", "deal_id", "due_date",
		).
		Values(
			task.ID, task.Title, task.Description, task.Type, task.Priority, task.Status,
			task.AssignedTo, task.CreatedBy, task.AccountID, task.ContactID, task.DealID, task.DueDate,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(taskSQL, taskArgs...).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) UpdateTask(task *domain.Task) error {
	queryBuilder := squirrel.
		Update(tasksTable).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("task_type", task.Type).
		Set("priority", task.Priority).
		Set("status", task.Status).
		Set("assigned_to", task.AssignedTo).
		Set("account_id", task.AccountID).
		Set("contact_id", task.ContactID).
		Set("deal_id", task.DealID).
		Set("due_date", task.DueDate).
		Set("completed_at", task.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": task.ID}).
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(taskSQL, taskArgs...)
	return err
}

func (r *taskRepository) GetTaskByID(id string, scope domain.Scope) (*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	tasks, err := r.queryTasks(queryBuilder)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	return tasks[0], nil
}

func (r *taskRepository) ListTasks(scope domain.Scope) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		OrderBy("due_date ASC NULLS LAST, created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) ListTasksByDeal(dealID string) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		OrderBy("due_date ASC NULLS LAST").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) ListOverdueTasks(scope domain.Scope, now time.Time) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.Lt{"due_date": now}).
		Where(squirrel.NotEq{"status": []domain.TaskStatus{domain.TaskStatusCompleted, domain.TaskStatusCancelled}}).
		OrderBy("due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	return r.queryTasks(queryBuilder)
}

// ListTasksDueBetween alimenta o gerador de lembretes. Sem escopo: o
// lembrete é dirigido ao responsável de cada tarefa.
func (r *taskRepository) ListTasksDueBetween(from, to time.Time) ([]*domain.Task, error) {
	queryBuilder := squirrel.
		Select(taskColumns).
		From(tasksTable).
		Where(squirrel.GtOrEq{"due_date": from}).
		Where(squirrel.Lt{"due_date": to}).
		Where(squirrel.Eq{"status": []domain.TaskStatus{domain.TaskStatusPending, domain.TaskStatusInProgress}}).
		OrderBy("due_date ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryTasks(queryBuilder)
}

func (r *taskRepository) DeleteTask(id string) error {
	queryBuilder := squirrel.
		Delete(tasksTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(taskSQL, taskArgs...)
	return err
}

func (r *taskRepository) CountTasksByStatus(scope domain.Scope) (map[domain.TaskStatus]int, error) {
	queryBuilder := squirrel.
		Select("status", "COUNT(*)").
		From(tasksTable).
		GroupBy("status").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(taskSQL, taskArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.TaskStatus]int)
	for rows.Next() {
		var status domain.TaskStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *taskRepository) queryTasks(queryBuilder squirrel.SelectBuilder) ([]*domain.Task, error) {
	taskSQL, taskArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(taskSQL, taskArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Type,
			&task.Priority,
			&task.Status,
			&task.AssignedTo,
			&task.CreatedBy,
			&task.AccountID,
			&task.ContactID,
			&task.DealID,
			&task.DueDate,
			&task.CompletedAt,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
