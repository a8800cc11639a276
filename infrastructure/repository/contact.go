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

const contactsTable = "contacts"

type ContactRepository interface {
	CreateContact(contact *domain.Contact) (*domain.Contact, error)
	UpdateContact(contact *domain.Contact) error
	GetContactByID(id string, scope domain.Scope) (*domain.Contact, error)
	GetContactByEmail(email string) (*domain.Contact, error)
	ListContacts(scope domain.Scope) ([]*domain.Contact, error)
	ListContactsByAccount(accountID string) ([]*domain.Contact, error)
	DeleteContact(id string) error
	CountContacts(scope domain.Scope) (int, error)
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

const contactColumns = "id, account_id, first_name, last_name, email, phone, job_title, created_at"

func (r *contactRepository) CreateContact(contact *domain.Contact) (*domain.Contact, error) {
	if contact.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do contato: %w", err)
		}
		contact.ID = id
	}

	queryBuilder := squirrel.
		Insert(contactsTable).
		Columns("id", "account_id", "first_name", "last_name", "email", "phone", "job_title").
		Values(contact.ID, contact.AccountID, contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.JobTitle).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(contactSQL, contactArgs...).Scan(&contact.CreatedAt)
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (r *contactRepository) UpdateContact(contact *domain.Contact) error {
	queryBuilder := squirrel.
		Update(contactsTable).
		Set("account_id", contact.AccountID).
		Set("first_name", contact.FirstName).
		Set("last_name", contact.LastName).
		Set("email", contact.Email).
		Set("phone", contact.Phone).
		Set("job_title", contact.JobTitle).
		Where(squirrel.Eq{"id": contact.ID}).
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(contactSQL, contactArgs...)
	return err
}

func (r *contactRepository) GetContactByID(id string, scope domain.Scope) (*domain.Contact, error) {
	queryBuilder := squirrel.
		Select(contactColumns).
		From(contactsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "account_id")

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	contact, err := r.scanContact(r.conn.QueryRow(contactSQL, contactArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (r *contactRepository) GetContactByEmail(email string) (*domain.Contact, error) {
	contact, err := r.scanContact(r.conn.QueryRow(
		"SELECT "+contactColumns+" FROM contacts WHERE email = $1", email,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(scope domain.Scope) ([]*domain.Contact, error) {
	queryBuilder := squirrel.
		Select(contactColumns).
		From(contactsTable).
		OrderBy("last_name ASC, first_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "account_id")

	return r.queryContacts(queryBuilder)
}

func (r *contactRepository) ListContactsByAccount(accountID string) ([]*domain.Contact, error) {
	queryBuilder := squirrel.
		Select(contactColumns).
		From(contactsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("last_name ASC, first_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryContacts(queryBuilder)
}

func (r *contactRepository) DeleteContact(id string) error {
	queryBuilder := squirrel.
		Delete(contactsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(contactSQL, contactArgs...)
	return err
}

func (r *contactRepository) CountContacts(scope domain.Scope) (int, error) {
	queryBuilder := squirrel.
		Select("COUNT(*)").
		From(contactsTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = scopeByAccount(queryBuilder, scope, "account_id")

	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.conn.QueryRow(contactSQL, contactArgs...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *contactRepository) queryContacts(queryBuilder squirrel.SelectBuilder) ([]*domain.Contact, error) {
	contactSQL, contactArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(contactSQL, contactArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.AccountID,
			&contact.FirstName,
			&contact.LastName,
			&contact.Email,
			&contact.Phone,
			&contact.JobTitle,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, &contact)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return contacts, nil
}

func (r *contactRepository) scanContact(row *sql.Row) (*domain.Contact, error) {
	var contact domain.Contact
	err := row.Scan(
		&contact.ID,
		&contact.AccountID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
		&contact.JobTitle,
		&contact.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}
