package domain

import "time"

type ProductCategory string

const (
	ProductCategorySoftware     ProductCategory = "software"
	ProductCategoryHardware     ProductCategory = "hardware"
	ProductCategoryService      ProductCategory = "service"
	ProductCategoryConsulting   ProductCategory = "consulting"
	ProductCategorySubscription ProductCategory = "subscription"
)

// Product é o catálogo compartilhado de produtos que podem ser vendidos.
// Não há escopo por papel: todos os usuários enxergam o catálogo completo.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description *string         `json:"description"`
	Category    ProductCategory `json:"category"`
	UnitPrice   float64         `json:"unit_price"`
	Active      bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
