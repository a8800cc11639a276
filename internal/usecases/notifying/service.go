package notifying

import (
	"errors"
	"fmt"
	"time"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
)

// Erros específicos do contexto de notificações
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("notification belongs to another user")

	ErrFetchNotification = errors.New("error fetching notification")
	ErrSaveNotification  = errors.New("error saving notification")
)

// NotificationService entrega notificações in-app. Cada usuário só
// enxerga e marca as próprias.
type NotificationService interface {
	ListNotifications(userID int, onlyUnread bool) ([]*domain.Notification, error)
	CountUnread(userID int) (int, error)
	MarkAsRead(userID int, notificationID string) error
	MarkAllAsRead(userID int) error
	Notify(notification *domain.Notification) (*domain.Notification, error)
}

type Service struct {
	notificationRepository repository.NotificationRepository
	now                    func() time.Time
}

func NewService(notificationRepository repository.NotificationRepository) NotificationService {
	return &Service{
		notificationRepository: notificationRepository,
		now:                    time.Now,
	}
}

func (s *Service) ListNotifications(userID int, onlyUnread bool) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepository.ListNotificationsByRecipient(userID, onlyUnread)
	if err != nil {
		return nil, wrap(ErrFetchNotification, err)
	}

	return notifications, nil
}

func (s *Service) CountUnread(userID int) (int, error) {
	count, err := s.notificationRepository.CountUnread(userID)
	if err != nil {
		return 0, wrap(ErrFetchNotification, err)
	}

	return count, nil
}

func (s *Service) MarkAsRead(userID int, notificationID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(notificationID)
	if err != nil {
		return wrap(ErrFetchNotification, err)
	}
	if notification == nil {
		return ErrNotificationNotFound
	}

	if notification.Recipient != userID {
		return ErrNotRecipient
	}

	return s.notificationRepository.MarkAsRead(notificationID, s.now())
}

func (s *Service) MarkAllAsRead(userID int) error {
	return s.notificationRepository.MarkAllAsRead(userID, s.now())
}

func (s *Service) Notify(notification *domain.Notification) (*domain.Notification, error) {
	created, err := s.notificationRepository.CreateNotification(notification)
	if err != nil {
		return nil, wrap(ErrSaveNotification, err)
	}

	return created, nil
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
