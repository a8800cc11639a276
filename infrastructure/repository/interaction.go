package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const interactionsTable = "interactions"

type InteractionRepository interface {
	CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error)
	UpdateInteraction(interaction *domain.Interaction) error
	GetInteractionByID(id string, scope domain.Scope) (*domain.Interaction, error)
	ListInteractions(scope domain.Scope) ([]*domain.Interaction, error)
	ListInteractionsByDeal(dealID string) ([]*domain.Interaction, error)
	ListInteractionsByAccount(accountID string, scope domain.Scope) ([]*domain.Interaction, error)
	DeleteInteraction(id string) error

	// Consultas do motor de scoring
	GetLatestByDeal(dealID string) (*domain.Interaction, error)
	CountByDealSince(dealID string, since time.Time) (int, error)
	ListCompletedDatesByDeal(dealID string, until time.Time, limit int) ([]time.Time, error)
}

type interactionRepository struct {
	conn *postgres.Connection
}

func NewInteractionRepository(conn *postgres.Connection) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

const interactionColumns = "id, interaction_type, direction, subject, summary, description, account_id, contact_id, deal_id, assigned_to, scheduled_at, duration_minutes, status, notes, outcome, created_by, created_at, updated_at"

func (r *interactionRepository) CreateInteraction(interaction *domain.Interaction) (*domain.Interaction, error) {
	if interaction.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da interação: %w", err)
		}
		interaction.ID = id
	}

	if interaction.Status == "" {
		interaction.Status = domain.InteractionStatusCompleted
	}

	queryBuilder := squirrel.
		Insert(interactionsTable).
		Columns(
			"id", "interaction_type", "direction", "subject", "summary", "description",
			"account_id", "contact_id", "deal_id", "assigned_to", "scheduled_at",
			"duration_minutes", "status", "notes", "outcome", "created_by",
		).
		Values(
			interaction.ID, interaction.Type, interaction.Direction, interaction.Subject,
			interaction.Summary, interaction.Description, interaction.AccountID,
			interaction.ContactID, interaction.DealID, interaction.AssignedTo,
			interaction.ScheduledAt, interaction.DurationMinutes, interaction.Status,
			interaction.Notes, interaction.Outcome, interaction.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(interactionSQL, interactionArgs...).Scan(&interaction.CreatedAt, &interaction.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return interaction, nil
}

func (r *interactionRepository) UpdateInteraction(interaction *domain.Interaction) error {
	queryBuilder := squirrel.
		Update(interactionsTable).
		Set("interaction_type", interaction.Type).
		Set("direction", interaction.Direction).
		Set("subject", interaction.Subject).
		Set("summary", interaction.Summary).
		Set("description", interaction.Description).
		Set("contact_id", interaction.ContactID).
		Set("deal_id", interaction.DealID).
		Set("assigned_to", interaction.AssignedTo).
		Set("scheduled_at", interaction.ScheduledAt).
		Set("duration_minutes", interaction.DurationMinutes).
		Set("status", interaction.Status).
		Set("notes", interaction.Notes).
		Set("outcome", interaction.Outcome).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": interaction.ID}).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(interactionSQL, interactionArgs...)
	return err
}

func (r *interactionRepository) GetInteractionByID(id string, scope domain.Scope) (*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionSQL, interactionArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return scanInteraction(rows)
}

func (r *interactionRepository) ListInteractions(scope domain.Scope) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		OrderBy("scheduled_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	return r.queryInteractions(queryBuilder)
}

func (r *interactionRepository) ListInteractionsByDeal(dealID string) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		OrderBy("scheduled_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryInteractions(queryBuilder)
}

func (r *interactionRepository) ListInteractionsByAccount(accountID string, scope domain.Scope) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("scheduled_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "created_by")

	return r.queryInteractions(queryBuilder)
}

func (r *interactionRepository) DeleteInteraction(id string) error {
	queryBuilder := squirrel.
		Delete(interactionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(interactionSQL, interactionArgs...)
	return err
}

// GetLatestByDeal busca a interação mais recente do deal pela data
// agendada. Qualquer status conta para fins de recência.
func (r *interactionRepository) GetLatestByDeal(dealID string) (*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select(interactionColumns).
		From(interactionsTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		OrderBy("scheduled_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	interactions, err := r.queryInteractions(queryBuilder)
	if err != nil {
		return nil, err
	}
	if len(interactions) == 0 {
		return nil, nil
	}

	return interactions[0], nil
}

func (r *interactionRepository) CountByDealSince(dealID string, since time.Time) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(interactionsTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		Where(squirrel.GtOrEq{"scheduled_at": since}).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(interactionSQL, interactionArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListCompletedDatesByDeal retorna as datas das últimas interações
// concluídas do deal até o instante informado, da mais recente para a
// mais antiga. Interações concluídas com data futura ficam de fora da
// cadência. Alimenta a sugestão de próximo contato.
func (r *interactionRepository) ListCompletedDatesByDeal(dealID string, until time.Time, limit int) ([]time.Time, error) {
	queryBuilder := squirrel.
		Select("scheduled_at").
		From(interactionsTable).
		Where(squirrel.Eq{"deal_id": dealID, "status": domain.InteractionStatusCompleted}).
		Where(squirrel.LtOrEq{"scheduled_at": until}).
		OrderBy("scheduled_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionSQL, interactionArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, err
		}
		dates = append(dates, at)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *interactionRepository) queryInteractions(queryBuilder squirrel.SelectBuilder) ([]*domain.Interaction, error) {
	interactionSQL, interactionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(interactionSQL, interactionArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []*domain.Interaction
	for rows.Next() {
		interaction, err := scanInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return interactions, nil
}

func scanInteraction(rows *sql.Rows) (*domain.Interaction, error) {
	var interaction domain.Interaction
	err := rows.Scan(
		&interaction.ID,
		&interaction.Type,
		&interaction.Direction,
		&interaction.Subject,
		&interaction.Summary,
		&interaction.Description,
		&interaction.AccountID,
		&interaction.ContactID,
		&interaction.DealID,
		&interaction.AssignedTo,
		&interaction.ScheduledAt,
		&interaction.DurationMinutes,
		&interaction.Status,
		&interaction.Notes,
		&interaction.Outcome,
		&interaction.CreatedBy,
		&interaction.CreatedAt,
		&interaction.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &interaction, nil
}
