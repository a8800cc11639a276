package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const documentsTable = "documents"

type DocumentRepository interface {
	CreateDocument(document *domain.Document) (*domain.Document, error)
	GetDocumentByID(id string) (*domain.Document, error)
	ListDocuments() ([]*domain.Document, error)
	ListDocumentsByDeal(dealID string) ([]*domain.Document, error)
	ListDocumentsByAccount(accountID string) ([]*domain.Document, error)
	DeleteDocument(id string) error
}

type documentRepository struct {
	conn *postgres.Connection
}

func NewDocumentRepository(conn *postgres.Connection) DocumentRepository {
	return &documentRepository{
		conn: conn,
	}
}

const documentColumns = "id, name, description, document_type, file_name, file_size, account_id, contact_id, deal_id, uploaded_by, created_at"

func (r *documentRepository) CreateDocument(document *domain.Document) (*domain.Document, error) {
	if document.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do documento: %w", err)
		}
		document.ID = id
	}

	queryBuilder := squirrel.
		Insert(documentsTable).
		Columns(
			"id", "name", "description", "document_type", "file_name", "file_size",
			"account_id", "contact_id", "deal_id", "uploaded_by",
		).
		Values(
			document.ID, document.Name, document.Description, document.Type,
			document.FileName, document.FileSize, document.AccountID,
			document.ContactID, document.DealID, document.UploadedBy,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	documentSQL, documentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(documentSQL, documentArgs...).Scan(&document.CreatedAt)
	if err != nil {
		return nil, err
	}

	return document, nil
}

func (r *documentRepository) GetDocumentByID(id string) (*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns).
		From(documentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	documents, err := r.queryDocuments(queryBuilder)
	if err != nil {
		return nil, err
	}
	if len(documents) == 0 {
		return nil, nil
	}

	return documents[0], nil
}

func (r *documentRepository) ListDocuments() ([]*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns).
		From(documentsTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(queryBuilder)
}

func (r *documentRepository) ListDocumentsByDeal(dealID string) ([]*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns).
		From(documentsTable).
		Where(squirrel.Eq{"deal_id": dealID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(queryBuilder)
}

func (r *documentRepository) ListDocumentsByAccount(accountID string) ([]*domain.Document, error) {
	queryBuilder := squirrel.
		Select(documentColumns).
		From(documentsTable).
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryDocuments(queryBuilder)
}

func (r *documentRepository) DeleteDocument(id string) error {
	queryBuilder := squirrel.
		Delete(documentsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	documentSQL, documentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(documentSQL, documentArgs...)
	return err
}

func (r *documentRepository) queryDocuments(queryBuilder squirrel.SelectBuilder) ([]*domain.Document, error) {
	documentSQL, documentArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(documentSQL, documentArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var documents []*domain.Document
	for rows.Next() {
		var document domain.Document
		if err := rows.Scan(
			&document.ID,
			&document.Name,
			&document.Description,
			&document.Type,
			&document.FileName,
			&document.FileSize,
			&document.AccountID,
			&document.ContactID,
			&document.DealID,
			&document.UploadedBy,
			&document.CreatedAt,
		); err != nil {
			return nil, err
		}
		documents = append(documents, &document)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
