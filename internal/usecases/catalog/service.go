package catalog

import (
	"errors"
	"fmt"

	"github.com/esteban-lambda/crm-api/infrastructure/repository"
	"github.com/esteban-lambda/crm-api/internal/domain"
	"github.com/esteban-lambda/crm-api/internal/usecases/authorizing"
)

// Erros específicos do catálogo
var (
	ErrInvalidProduct   = errors.New("product name and sku are required")
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateSKU     = errors.New("a product with this sku already exists")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeleteForbidden  = errors.New("delete not allowed for this role")

	ErrFetchProduct = errors.New("error fetching product")
	ErrSaveProduct  = errors.New("error saving product")
)

// CatalogService gerencia o catálogo de produtos. O catálogo é
// compartilhado: leitura irrestrita para qualquer papel.
type CatalogService interface {
	CreateProduct(grant *domain.Grant, product *domain.Product) (*domain.Product, error)
	UpdateProduct(grant *domain.Grant, product *domain.Product) (*domain.Product, error)
	GetProduct(productID string) (*domain.Product, error)
	ListProducts(onlyActive bool) ([]*domain.Product, error)
	DeleteProduct(grant *domain.Grant, productID string) error
}

type Service struct {
	productRepository    repository.ProductRepository
	authorizationService authorizing.AuthorizationService
}

func NewService(
	productRepository repository.ProductRepository,
	authorizationService authorizing.AuthorizationService,
) CatalogService {
	return &Service{
		productRepository:    productRepository,
		authorizationService: authorizationService,
	}
}

func (s *Service) CreateProduct(grant *domain.Grant, product *domain.Product) (*domain.Product, error) {
	if product.Name == "" || product.SKU == "" {
		return nil, ErrInvalidProduct
	}

	if !s.authorizationService.CanChange(grant, domain.KindProduct, nil) {
		return nil, ErrPermissionDenied
	}

	existing, err := s.productRepository.GetProductBySKU(product.SKU)
	if err != nil {
		return nil, wrap(ErrFetchProduct, err)
	}
	if existing != nil {
		return nil, ErrDuplicateSKU
	}

	created, err := s.productRepository.CreateProduct(product)
	if err != nil {
		return nil, wrap(ErrSaveProduct, err)
	}

	return created, nil
}

func (s *Service) UpdateProduct(grant *domain.Grant, product *domain.Product) (*domain.Product, error) {
	if !s.authorizationService.CanChange(grant, domain.KindProduct, nil) {
		return nil, ErrPermissionDenied
	}

	current, err := s.productRepository.GetProductByID(product.ID)
	if err != nil {
		return nil, wrap(ErrFetchProduct, err)
	}
	if current == nil {
		return nil, ErrProductNotFound
	}

	if err := s.productRepository.UpdateProduct(product); err != nil {
		return nil, wrap(ErrSaveProduct, err)
	}

	return product, nil
}

func (s *Service) GetProduct(productID string) (*domain.Product, error) {
	product, err := s.productRepository.GetProductByID(productID)
	if err != nil {
		return nil, wrap(ErrFetchProduct, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

func (s *Service) ListProducts(onlyActive bool) ([]*domain.Product, error) {
	products, err := s.productRepository.ListProducts(onlyActive)
	if err != nil {
		return nil, wrap(ErrFetchProduct, err)
	}

	return products, nil
}

func (s *Service) DeleteProduct(grant *domain.Grant, productID string) error {
	product, err := s.productRepository.GetProductByID(productID)
	if err != nil {
		return wrap(ErrFetchProduct, err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	if !s.authorizationService.CanDelete(grant, nil) {
		return ErrDeleteForbidden
	}

	return s.productRepository.DeleteProduct(productID)
}

func wrap(err error, cause error) error {
	return fmt.Errorf("%w: %v", err, cause)
}
