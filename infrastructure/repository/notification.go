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

const notificationsTable = "notifications"

type NotificationRepository interface {
	CreateNotification(notification *domain.Notification) (*domain.Notification, error)
	GetNotificationByID(id string) (*domain.Notification, error)
	ListNotificationsByRecipient(recipient int, onlyUnread bool) ([]*domain.Notification, error)
	CountUnread(recipient int) (int, error)
	MarkAsRead(id string, at time.Time) error
	MarkAllAsRead(recipient int, at time.Time) error
	DeleteNotification(id string) error
}

type notificationRepository struct {
	conn *postgres.Connection
}

func NewNotificationRepository(conn *postgres.Connection) NotificationRepository {
	return &notificationRepository{
		conn: conn,
	}
}

const notificationColumns = "id, recipient, notification_type, priority, title, message, action_url, is_read, read_at, created_at"

func (r *notificationRepository) CreateNotification(notification *domain.Notification) (*domain.Notification, error) {
	if notification.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da notificação: %w", err)
		}
		notification.ID = id
	}

	if notification.Priority == "" {
		notification.Priority = domain.NotificationPriorityNormal
	}

	queryBuilder := squirrel.
		Insert(notificationsTable).
		Columns("id", "recipient", "notification_type", "priority", "title", "message", "action_url").
		Values(
			notification.ID, notification.Recipient, notification.Type, notification.Priority,
			notification.Title, notification.Message, notification.ActionURL,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(notificationSQL, notificationArgs...).Scan(&notification.CreatedAt)
	if err != nil {
		return nil, err
	}

	return notification, nil
}

func (r *notificationRepository) GetNotificationByID(id string) (*domain.Notification, error) {
	queryBuilder := squirrel.
		Select(notificationColumns).
		From(notificationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	notifications, err := r.queryNotifications(queryBuilder)
	if err != nil {
		return nil, err
	}
	if len(notifications) == 0 {
		return nil, nil
	}

	return notifications[0], nil
}

func (r *notificationRepository) ListNotificationsByRecipient(recipient int, onlyUnread bool) ([]*domain.Notification, error) {
	queryBuilder := squirrel.
		Select(notificationColumns).
		From(notificationsTable).
		Where(squirrel.Eq{"recipient": recipient}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyUnread {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_read": false})
	}

	return r.queryNotifications(queryBuilder)
}

func (r *notificationRepository) CountUnread(recipient int) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(notificationsTable).
		Where(squirrel.Eq{"recipient": recipient, "is_read": false}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(notificationSQL, notificationArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *notificationRepository) MarkAsRead(id string, at time.Time) error {
	queryBuilder := squirrel.
		Update(notificationsTable).
		Set("is_read", true).
		Set("read_at", at).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(notificationSQL, notificationArgs...)
	return err
}

func (r *notificationRepository) MarkAllAsRead(recipient int, at time.Time) error {
	queryBuilder := squirrel.
		Update(notificationsTable).
		Set("is_read", true).
		Set("read_at", at).
		Where(squirrel.Eq{"recipient": recipient, "is_read": false}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(notificationSQL, notificationArgs...)
	return err
}

func (r *notificationRepository) DeleteNotification(id string) error {
	queryBuilder := squirrel.
		Delete(notificationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(notificationSQL, notificationArgs...)
	return err
}

func (r *notificationRepository) queryNotifications(queryBuilder squirrel.SelectBuilder) ([]*domain.Notification, error) {
	notificationSQL, notificationArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(notificationSQL, notificationArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var notification domain.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.Recipient,
			&notification.Type,
			&notification.Priority,
			&notification.Title,
			&notification.Message,
			&notification.ActionURL,
			&notification.Read,
			&notification.ReadAt,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
