package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const timelineTable = "timeline_events"

type TimelineRepository interface {
	CreateEvent(event *domain.TimelineEvent) (*domain.TimelineEvent, error)
	ListEvents(limit int) ([]*domain.TimelineEvent, error)
	ListEventsByDeal(dealID string, limit int) ([]*domain.TimelineEvent, error)
	ListEventsByAccount(accountID string, limit int) ([]*domain.TimelineEvent, error)
}

type timelineRepository struct {
	conn *postgres.Connection
}

func NewTimelineRepository(conn *postgres.Connection) TimelineRepository {
	return &timelineRepository{
		conn: conn,
	}
}

const timelineColumns = "id, event_type, action, title, description, user_id, account_id, contact_id, deal_id, is_important, created_at"

func (r *timelineRepository) CreateEvent(event *domain.TimelineEvent) (*domain.TimelineEvent, error) {
	if event.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do evento: %w", err)
		}
		event.ID = id
	}

	queryBuilder := squirrel.
		Insert(timelineTable).
		Columns(
			"id", "event_type", "action", "title", "description",
			"user_id", "account_id", "contact_id", "deal_id", "is_important",
		).
		Values(
			event.ID, event.EventType, event.Action, event.Title, event.Description,
			event.UserID, event.AccountID, event.ContactID, event.DealID, event.Important,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	eventSQL, eventArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(eventSQL, eventArgs...).Scan(&event.CreatedAt)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *timelineRepository) ListEvents(limit int) ([]*domain.TimelineEvent, error) {
	queryBuilder := squirrel.
		Select(timelineColumns).
		From(timelineTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEvents(queryBuilder)
}

func (r *timelineRepository) ListEventsByDeal(dealID string, limit int) ([]*domain.TimelineEvent, error) {
	queryBuilder := squirrel.
		Select(timelineColumns).
		From(timelineTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEvents(queryBuilder)
}

func (r *timelineRepository) ListEventsByAccount(accountID string, limit int) ([]*domain.TimelineEvent, error) {
	queryBuilder := squirrel.
		Select(timelineColumns).
		From(timelineTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryEvents(queryBuilder)
}

func (r *timelineRepository) queryEvents(queryBuilder squirrel.SelectBuilder) ([]*domain.TimelineEvent, error) {
	eventSQL, eventArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(eventSQL, eventArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.TimelineEvent
	for rows.Next() {
		var event domain.TimelineEvent
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.Action,
			&event.Title,
			&event.Description,
			&event.UserID,
			&event.AccountID,
			&event.ContactID,
			&event.DealID,
			&event.Important,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
