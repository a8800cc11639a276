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

const productsTable = "products"

// ProductRepository não recebe escopo: o catálogo é compartilhado entre
// todos os papéis
type ProductRepository interface {
	CreateProduct(product *domain.Product) (*domain.Product, error)
	UpdateProduct(product *domain.Product) error
	GetProductByID(id string) (*domain.Product, error)
	GetProductBySKU(sku string) (*domain.Product, error)
	ListProducts(onlyActive bool) ([]*domain.Product, error)
	DeleteProduct(id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

const productColumns = "id, name, sku, description, category, unit_price, is_active, created_at, updated_at"

func (r *productRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	if product.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar ID do produto: %w", err)
		}
		product.ID = id
	}

	queryBuilder := squirrel.
		Insert(productsTable).
		Columns("id", "name", "sku", "description", "category", "unit_price", "is_active").
		Values(product.ID, product.Name, product.SKU, product.Description, product.Category, product.UnitPrice, product.Active).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRow(productSQL, productArgs...).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(product *domain.Product) error {
	queryBuilder := squirrel.
		Update(productsTable).
		Set("name", product.Name).
		Set("sku", product.SKU).
		Set("description", product.Description).
		Set("category", product.Category).
		Set("unit_price", product.UnitPrice).
		Set("is_active", product.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": product.ID}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(productSQL, productArgs...)
	return err
}

func (r *productRepository) GetProductByID(id string) (*domain.Product, error) {
	return r.getProductBy("id", id)
}

func (r *productRepository) GetProductBySKU(sku string) (*domain.Product, error) {
	return r.getProductBy("sku", sku)
}

func (r *productRepository) getProductBy(column, value string) (*domain.Product, error) {
	var product domain.Product
	err := r.conn.QueryRow(
		"SELECT "+productColumns+" FROM products WHERE "+column+" = $1", value,
	).Scan(
		&product.ID,
		&product.Name,
		&product.SKU,
		&product.Description,
		&product.Category,
		&product.UnitPrice,
		&product.Active,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) ListProducts(onlyActive bool) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select(productColumns).
		From(productsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"is_active": true})
	}

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(productSQL, productArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.SKU,
			&product.Description,
			&product.Category,
			&product.UnitPrice,
			&product.Active,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) DeleteProduct(id string) error {
	queryBuilder := squirrel.
		Delete(productsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	productSQL, productArgs, err := queryBuilder.ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(productSQL, productArgs...)
	return err
}
