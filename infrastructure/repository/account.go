package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const accountsTable = "accounts"

type AccountRepository interface {
	CreateAccount(account *domain.Account) (*domain.Account, error)
	UpdateAccount(account *domain.Account) error
	GetAccountByID(id string, scope domain.Scope) (*domain.Account, error)
	ListAccounts(scope domain.Scope) ([]*domain.Account, error)
	DeleteAccount(id string) error
	CountAccounts(scope domain.Scope) (int, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) CreateAccount(account *domain.Account) (*domain.Account, error) {
	if account.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID da conta: %w", err)
		}
		account.ID = id
	}

	queryBuilder := squirrel.
		Insert(accountsTable).
		Columns("id", "name", "website", "industry", "description").
		Values(account.ID, account.Name, account.Website, account.Industry, account.Description).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(accountSQL, accountArgs...).Scan(&account.CreatedAt)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) UpdateAccount(account *domain.Account) error {
	queryBuilder := squirrel.
		Update(accountsTable).
		Set("name", account.Name).
		Set("website", account.Website).
		Set("industry", account.Industry).
		Set("description", account.Description).
		Where(squirrel.Eq{"id": account.ID}).
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(accountSQL, accountArgs...)
	return err
}

func (r *accountRepository) GetAccountByID(id string, scope domain.Scope) (*domain.Account, error) {
	queryBuilder := squirrel.
		Select("id", "name", "website", "industry", "description", "created_at").
		From(accountsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "id")

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var account domain.Account
	err = r.conn.QueryRow(accountSQL, accountArgs...).Scan(
		&account.ID,
		&account.Name,
		&account.Website,
		&account.Industry,
		&account.Description,
		&account.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}

func (r *accountRepository) ListAccounts(scope domain.Scope) ([]*domain.Account, error) {
	queryBuilder := squirrel.
		Select("id", "name", "website", "industry", "description", "created_at").
		From(accountsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "id")

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(accountSQL, accountArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.Name,
			&account.Website,
			&account.Industry,
			&account.Description,
			&account.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *accountRepository) DeleteAccount(id string) error {
	queryBuilder := squirrel.
		Delete(accountsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(accountSQL, accountArgs...)
	return err
}

func (r *accountRepository) CountAccounts(scope domain.Scope) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(accountsTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "id")

	accountSQL, accountArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(accountSQL, accountArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
