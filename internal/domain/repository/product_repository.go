package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// ProductFilter critères de listing des produits.
type ProductFilter struct {
	IncludeVariants bool
	CategoryID      string
	Limit           int
	Offset          int
}

// ProductRepository port de persistance pour Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(productID string, stock int) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Delete(id string) error

	GetVariant(variantID string) (*entity.ProductVariant, error)
	UpdateVariantStock(variantID string, stock int) error
	ReplaceVariants(productID string, variants []entity.ProductVariant) error
}
