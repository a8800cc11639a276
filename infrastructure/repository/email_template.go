package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/esteban-lambda/crm-api/infrastructure/database/postgres"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/pkg/utils"
	_ "github.com/lib/pq"
)

const emailTemplatesTable = "email_templates"

type EmailTemplateRepository interface {
	CreateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error)
	UpdateEmailTemplate(template *domain.EmailTemplate) error
	GetEmailTemplateByID(id string) (*domain.EmailTemplate, error)
	ListEmailTemplates(onlyActive bool) ([]*domain.EmailTemplate, error)
	DeleteEmailTemplate(id string) error
}

type emailTemplateRepository struct {
	conn *postgres.Connection
}

func NewEmailTemplateRepository(conn *postgres.Connection) EmailTemplateRepository {
	return &emailTemplateRepository{
		conn: conn,
	}
}

const emailTemplateColumns = "id, name, subject, body_html, body_text, category, available_variables, is_active, created_by, created_at, updated_at"

func (r *emailTemplateRepository) CreateEmailTemplate(template *domain.EmailTemplate) (*domain.EmailTemplate, error) {
	if template.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do template: %w", err)
		}
		template.ID = id
	}

	if template.AvailableVariables == "" {
		template.AvailableVariables = domain.DefaultTemplateVariables
	}

	queryBuilder := squirrel.
		Insert(emailTemplatesTable).
		Columns(
			"id", "name", "subject", "body_html", "body_text", "category",
			"available_variables", "is_active", "created_by",
		).
		Values(
			template.ID, template.Name, template.Subject, template.BodyHTML,
			template.BodyText, template.Category, template.AvailableVariables,
			template.Active, template.CreatedBy,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	templateSQL, templateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(templateSQL, templateArgs...).Scan(&template.CreatedAt, &template.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return template, nil
}

func (r *emailTemplateRepository) UpdateEmailTemplate(template *domain.EmailTemplate) error {
	queryBuilder := squirrel.
		Update(emailTemplatesTable).
		Set("name", template.Name).
		Set("subject", template.Subject).
		Set("body_html", template.BodyHTML).
		Set("body_text", template.BodyText).
		Set("category", template.Category).
		Set("available_variables", template.AvailableVariables).
		Set("is_active", template.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": template.ID}).
		PlaceholderFormat(squirrel.Dollar)

	templateSQL, templateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(templateSQL, templateArgs...)
	return err
}

func (r *emailTemplateRepository) GetEmailTemplateByID(id string) (*domain.EmailTemplate, error) {
	queryBuilder := squirrel.
		Select(emailTemplateColumns).
		From(emailTemplatesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	templates, err := r.queryEmailTemplates(queryBuilder)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, nil
	}

	return templates[0], nil
}

func (r *emailTemplateRepository) ListEmailTemplates(onlyActive bool) ([]*domain.EmailTemplate, error) {
	queryBuilder := squirrel.
		Select(emailTemplateColumns).
		From(emailTemplatesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	return r.queryEmailTemplates(queryBuilder)
}

func (r *emailTemplateRepository) DeleteEmailTemplate(id string) error {
	queryBuilder := squirrel.
		Delete(emailTemplatesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	templateSQL, templateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(templateSQL, templateArgs...)
	return err
}

func (r *emailTemplateRepository) queryEmailTemplates(queryBuilder squirrel.SelectBuilder) ([]*domain.EmailTemplate, error) {
	templateSQL, templateArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(templateSQL, templateArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*domain.EmailTemplate
	for rows.Next() {
		var template domain.EmailTemplate
		if err := rows.Scan(
			&template.ID,
			&template.Name,
			&template.Subject,
			&template.BodyHTML,
			&template.BodyText,
			&template.Category,
			&template.AvailableVariables,
			&template.Active,
			&template.CreatedBy,
			&template.CreatedAt,
			&template.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, &template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}
