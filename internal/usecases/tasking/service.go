package tasking

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

// Erros específicos do contexto de tarefas
var (
	ErrInvalidTask      = errors.New("task title and assignee are required")
	ErrTaskNotFound     = errors.New("task not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteForbidden  = errors.New("delete not allowed for this role")

	ErrFetchTask = errors.New("error fetching task")
	ErrSaveTask  = errors.New("error saving task")
)

type TaskService interface {
	CreateTask(grant *domain.Grant, task *domain.Task) (*domain.Task, error)
	UpdateTask(grant *domain.Grant, task *domain.Task) (*domain.Task, error)
	CompleteTask(grant *domain.Grant, taskID string) (*domain.Task, error)
	GetTask(grant *domain.Grant, taskID string) (*domain.Task, error)
	ListTasks(grant *domain.Grant) ([]*domain.Task, error)
	ListOverdue(grant *domain.Grant) ([]*domain.Task, error)
	DeleteTask(grant *domain.Grant, taskID string) error
}

type Service struct {
	taskRepository         repository.TaskRepository
	notificationRepository repository.NotificationRepository
	authorizationService   authorizing.AuthorizationService
	now                    func() time.Time
}

func NewService(
	taskRepository repository.TaskRepository,
	notificationRepository repository.NotificationRepository,
	authorizationService authorizing.AuthorizationService,
) TaskService {
	return &Service{
		taskRepository:         taskRepository,
		notificationRepository: notificationRepository,
		authorizationService:   authorizationService,
		now:                    time.Now,
	}
}

func (s *Service) CreateTask(grant *domain.Grant, task *domain.Task) (*domain.Task, error) {
	if task.Title == "" || task.AssignedTo == 0 {
		return nil, ErrInvalidTask
	}

	if !s.authorizationService.CanChange(grant, domain.KindTask, nil) {
		return nil, ErrPermissionDenied
	}

	if task.CreatedBy == nil {
		task.CreatedBy = &grant.UserID
	}

	created, err := s.taskRepository.CreateTask(task)
	if err != nil {
		return nil, wrap(ErrSaveTask, err)
	}

	if created.AssignedTo != grant.UserID {
		s.notifyAssignment(created)
	}

	return created, nil
}

func (s *Service) UpdateTask(grant *domain.Grant, task *domain.Task) (*domain.Task, error) {
	current, err := s.taskRepository.GetTaskByID(task.ID, domain.UnrestrictedScope)
	if err != nil {
		return nil, wrap(ErrFetchTask, err)
	}
	if current == nil {
		return nil, ErrTaskNotFound
	}

	record := &domain.RecordRef{AssignedTo: &current.AssignedTo, CreatedBy: current.CreatedBy}
	if !s.authorizationService.CanChange(grant, domain.KindTask, record) {
		return nil, ErrPermissionDenied
	}

	if task.Status == domain.TaskStatusCompleted && task.CompletedAt == nil {
		now := s.now()
		task.CompletedAt = &now
	}

	if err := s.taskRepository.UpdateTask(task); err != nil {
		return nil, wrap(ErrSaveTask, err)
	}

	return task, nil
}

func (s *Service) CompleteTask(grant *domain.Grant, taskID string) (*domain.Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID, domain.UnrestrictedScope)
	if err != nil {
		return nil, wrap(ErrFetchTask, err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	record := &domain.RecordRef{AssignedTo: &task.AssignedTo, CreatedBy: task.CreatedBy}
	if !s.authorizationService.CanChange(grant, domain.KindTask, record) {
		return nil, ErrPermissionDenied
	}

	now := s.now()
	task.Status = domain.TaskStatusCompleted
	task.CompletedAt = &now

	if err := s.taskRepository.UpdateTask(task); err != nil {
		return nil, wrap(ErrSaveTask, err)
	}

	return task, nil
}

func (s *Service) GetTask(grant *domain.Grant, taskID string) (*domain.Task, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindTask)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepository.GetTaskByID(taskID, scope)
	if err != nil {
		return nil, wrap(ErrFetchTask, err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *Service) ListTasks(grant *domain.Grant) ([]*domain.Task, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindTask)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListTasks(scope)
	if err != nil {
		return nil, wrap(ErrFetchTask, err)
	}

	return tasks, nil
}

func (s *Service) ListOverdue(grant *domain.Grant) ([]*domain.Task, error) {
	scope, err := s.authorizationService.ScopeFor(grant, domain.KindTask)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListOverdueTasks(scope, s.now())
	if err != nil {
		return nil, wrap(ErrFetchTask, err)
	}

	return tasks, nil
}

func (s *Service) DeleteTask(grant *domain.Grant, taskID string) error {
	task, err := s.taskRepository.GetTaskByID(taskID, domain.UnrestrictedScope)
	if err != nil {
		return wrap(ErrFetchTask, err)
	}
	if task == nil {
		return ErrTaskNotFound
	}

	record := &domain.RecordRef{AssignedTo: &task.AssignedTo, CreatedBy: task.CreatedBy}
	if !s.authorizationService.CanDelete(grant, record) {
		return ErrDeleteForbidden
	}

	return s.taskRepository.DeleteTask(taskID)
}

func (s *Service) notifyAssignment(task *domain.Task) {
	url := fmt.Sprintf("/tasks/%s", task.ID)

	priority := domain.NotificationPriorityNormal
	if task.Priority == domain.TaskPriorityUrgent || task.Priority == domain.TaskPriorityHigh {
		priority = domain.NotificationPriorityHigh
	}

	notification := &domain.Notification{
		Recipient: task.AssignedTo,
		Type:      domain.NotificationTypeTask,
		Priority:  priority,
		Title:     "Nova tarefa atribuída a você",
		Message:   fmt.Sprintf("A tarefa %q foi atribuída a você", task.Title),
		ActionURL: &url,
	}

	if _, err := s.notificationRepository.CreateNotification(notification); err != nil {
		logrus.WithField("error", err).Warn("tasking: failed to create assignment notification")
	}
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
