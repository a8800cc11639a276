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

const (
	dealsTable        = "deals"
	dealProductsTable = "deal_products"
)

type DealRepository interface {
	CreateDeal(deal *domain.Deal) (*domain.Deal, error)
	UpdateDeal(deal *domain.Deal) error
	GetDealByID(id string, scope domain.Scope) (*domain.Deal, error)
	ListDeals(scope domain.Scope) ([]*domain.Deal, error)
	ListAllDeals() ([]*domain.Deal, error)
	DeleteDeal(id string) error
	CountDeals(scope domain.Scope) (int, error)
	ListAccountIDsByAssignees(userIDs []int) ([]string, error)

	// Caminho dedicado de aplicação de campos calculados. Grava apenas
	// lead_score/last_score_update (e value, quando itens mudam) sem
	// passar pelo caminho geral de edição. É isso que impede o
	// recálculo de disparar a si mesmo.
	ApplyScore(dealID string, score int, at time.Time) error
	ApplyScoreAndValue(dealID string, score int, value float64, at time.Time) error

	// Itens de linha
	GetDealProduct(id string) (*domain.DealProduct, error)
	ListDealProducts(dealID string) ([]*domain.DealProduct, error)
	CreateDealProduct(item *domain.DealProduct) (*domain.DealProduct, error)
	UpdateDealProduct(item *domain.DealProduct) error
	DeleteDealProduct(id string) error
	SumLineItemValue(dealID string) (float64, error)
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

const dealColumns = "id, name, account_id, contact_id, value, stage, expected_close_date, assigned_to, lead_score, last_score_update, created_at, updated_at"

func (r *dealRepository) CreateDeal(deal *domain.Deal) (*domain.Deal, error) {
	if deal.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do deal: %w", err)
		}
		deal.ID = id
	}

	if deal.Stage == "" {
		deal.Stage = domain.DealStageProspecting
	}

	queryBuilder := squirrel.
		Insert(dealsTable).
		Columns("id", "name", "account_id", "contact_id", "value", "stage", "expected_close_date", "assigned_to").
		Values(deal.ID, deal.Name, deal.AccountID, deal.ContactID, deal.Value, deal.Stage, deal.ExpectedCloseDate, deal.AssignedTo).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(dealSQL, dealArgs...).Scan(&deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return deal, nil
}

// UpdateDeal é o caminho geral de edição: não toca em lead_score nem em
// last_score_update, que pertencem ao motor de scoring
func (r *dealRepository) UpdateDeal(deal *domain.Deal) error {
	queryBuilder := squirrel.
		Update(dealsTable).
		Set("name", deal.Name).
		Set("account_id", deal.AccountID).
		Set("contact_id", deal.ContactID).
		Set("stage", deal.Stage).
		Set("expected_close_date", deal.ExpectedCloseDate).
		Set("assigned_to", deal.AssignedTo).
		Set("value", deal.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": deal.ID}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(dealSQL, dealArgs...)
	return err
}

func (r *dealRepository) GetDealByID(id string, scope domain.Scope) (*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns).
		From(dealsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	deal, err := scanDeal(r.conn.QueryRow(dealSQL, dealArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return deal, nil
}

func (r *dealRepository) ListDeals(scope domain.Scope) ([]*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns).
		From(dealsTable).
		OrderBy("lead_score DESC, created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	return r.queryDeals(queryBuilder)
}

// ListAllDeals ignora escopo. Uso exclusivo da varredura de recálculo.
func (r *dealRepository) ListAllDeals() ([]*domain.Deal, error) {
	queryBuilder := squirrel.
		Select(dealColumns).
		From(dealsTable).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDeals(queryBuilder)
}

func (r *dealRepository) DeleteDeal(id string) error {
	queryBuilder := squirrel.
		Delete(dealsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(dealSQL, dealArgs...)
	return err
}

func (r *dealRepository) CountDeals(scope domain.Scope) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(dealsTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAssignee(queryBuilder, scope, "assigned_to", "")

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(dealSQL, dealArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ListAccountIDsByAssignees retorna os IDs das contas alcançadas pelos
// deals dos usuários informados. É a base do escopo transitivo de
// Account e Contact.
func (r *dealRepository) ListAccountIDsByAssignees(userIDs []int) ([]string, error) {
	queryBuilder := squirrel.
		Select("DISTINCT account_id").
		From(dealsTable).
		Where(squirrel.Eq{"assigned_to": userIDs}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(dealSQL, dealArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accountIDs := make([]string, 0)
	for rows.Next() {
		var accountID string
		if err := rows.Scan(&accountID); err != nil {
			return nil, err
		}
		accountIDs = append(accountIDs, accountID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accountIDs, nil
}

func (r *dealRepository) ApplyScore(dealID string, score int, at time.Time) error {
	queryBuilder := squirrel.
		Update(dealsTable).
		Set("lead_score", score).
		Set("last_score_update", at).
		Where(squirrel.Eq{"id": dealID}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(dealSQL, dealArgs...)
	return err
}

func (r *dealRepository) ApplyScoreAndValue(dealID string, score int, value float64, at time.Time) error {
	queryBuilder := squirrel.
		Update(dealsTable).
		Set("lead_score", score).
		Set("value", value).
		Set("last_score_update", at).
		Where(squirrel.Eq{"id": dealID}).
		PlaceholderFormat(squirrel.Dollar)

	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(dealSQL, dealArgs...)
	return err
}

func (r *dealRepository) GetDealProduct(id string) (*domain.DealProduct, error) {
	var item domain.DealProduct
	err := r.conn.QueryRow(
		"SELECT id, deal_id, product_id, quantity, unit_price, discount_percent FROM deal_products WHERE id = $1", id,
	).Scan(
		&item.ID,
		&item.DealID,
		&item.ProductID,
		&item.Quantity,
		&item.UnitPrice,
		&item.DiscountPercent,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *dealRepository) ListDealProducts(dealID string) ([]*domain.DealProduct, error) {
	queryBuilder := squirrel.
		Select("id", "deal_id", "product_id", "quantity", "unit_price", "discount_percent").
		From(dealProductsTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(itemSQL, itemArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*domain.DealProduct
	for rows.Next() {
		var item domain.DealProduct
		if err := rows.Scan(
			&item.ID,
			&item.DealID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.DiscountPercent,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *dealRepository) CreateDealProduct(item *domain.DealProduct) (*domain.DealProduct, error) {
	if item.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do item: %w", err)
		}
		item.ID = id
	}

	queryBuilder := squirrel.
		Insert(dealProductsTable).
		Columns("id", "deal_id", "product_id", "quantity", "unit_price", "discount_percent").
		Values(item.ID, item.DealID, item.ProductID, item.Quantity, item.UnitPrice, item.DiscountPercent).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *dealRepository) UpdateDealProduct(item *domain.DealProduct) error {
	queryBuilder := squirrel.
		Update(dealProductsTable).
		Set("quantity", item.Quantity).
		Set("unit_price", item.UnitPrice).
		Set("discount_percent", item.DiscountPercent).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	return err
}

func (r *dealRepository) DeleteDealProduct(id string) error {
	queryBuilder := squirrel.
		Delete(dealProductsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	itemSQL, itemArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(itemSQL, itemArgs...)
	return err
}

// SumLineItemValue soma quantity * unit_price dos itens do deal. O
// desconto por item fica de fora do rollup de propósito: só afeta o
// total exibido do próprio item.
func (r *dealRepository) SumLineItemValue(dealID string) (float64, error) {
	var total float64
	err := r.conn.QueryRow(
		"SELECT COALESCE(SUM(quantity * unit_price), 0) FROM deal_products WHERE deal_id = $1", dealID,
	).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *dealRepository) queryDeals(queryBuilder squirrel.SelectBuilder) ([]*domain.Deal, error) {
	dealSQL, dealArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(dealSQL, dealArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deals []*domain.Deal
	for rows.Next() {
		deal, err := scanDealRows(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, deal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deals, nil
}

func scanDeal(row *sql.Row) (*domain.Deal, error) {
	var deal domain.Deal
	err := row.Scan(
		&deal.ID,
		&deal.Name,
		&deal.AccountID,
		&deal.ContactID,
		&deal.Value,
		&deal.Stage,
		&deal.ExpectedCloseDate,
		&deal.AssignedTo,
		&deal.LeadScore,
		&deal.LastScoreUpdate,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

func scanDealRows(rows *sql.Rows) (*domain.Deal, error) {
	var deal domain.Deal
	err := rows.Scan(
		&deal.ID,
		&deal.Name,
		&deal.AccountID,
		&deal.ContactID,
		&deal.Value,
		&deal.Stage,
		&deal.ExpectedCloseDate,
		&deal.AssignedTo,
		&deal.LeadScore,
		&deal.LastScoreUpdate,
		&deal.CreatedAt,
		&deal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deal, nil
}
