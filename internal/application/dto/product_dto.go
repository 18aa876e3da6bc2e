package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrée de création d'un produit.
type CreateProductRequest struct {
	SKU         string                  `json:"sku" validate:"required,min=1,max=100"`
	Name        string                  `json:"name" validate:"required,min=1,max=200"`
	Description string                  `json:"description"`
	Price       decimal.Decimal         `json:"price"`
	Stock       int                     `json:"stock"`
	LowStock    int                     `json:"lowStock"`
	TrackStock  *bool                   `json:"trackStock"`
	CategoryID  string                  `json:"categoryId"`
	ImageURL    string                  `json:"image"`
	Variants    []VariantRequest        `json:"variants"`
}

// UpdateProductRequest entrée de mise à jour (champs optionnels).
// Le stock n'est pas modifiable ici : il passe par les mouvements d'inventaire.
type UpdateProductRequest struct {
	Name        *string           `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string           `json:"description"`
	Price       *decimal.Decimal  `json:"price"`
	LowStock    *int              `json:"lowStock"`
	TrackStock  *bool             `json:"trackStock"`
	CategoryID  *string           `json:"categoryId"`
	ImageURL    *string           `json:"image"`
	Variants    []VariantRequest  `json:"variants"`
}

// VariantRequest déclinaison envoyée à la création/mise à jour.
type VariantRequest struct {
	ID    string           `json:"id"`
	Name  string           `json:"name" validate:"required"`
	SKU   string           `json:"sku"`
	Price *decimal.Decimal `json:"price"`
	Stock int              `json:"stock" validate:"min=0"`
}

// VariantResponse déclinaison dans les réponses.
type VariantResponse struct {
	ID    string           `json:"id"`
	Name  string           `json:"name"`
	SKU   string           `json:"sku,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
	Stock int              `json:"stock"`
}

// ProductResponse sortie d'un produit. EffectiveStock, StockStatus et
// StockValue sont dérivés par le moteur de stock, jamais persistés.
type ProductResponse struct {
	ID             string            `json:"id"`
	SKU            string            `json:"sku"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Stock          int               `json:"stock"`
	LowStock       int               `json:"lowStock"`
	TrackStock     bool              `json:"trackStock"`
	CategoryID     string            `json:"categoryId,omitempty"`
	ImageURL       string            `json:"image,omitempty"`
	Variants       []VariantResponse `json:"variants,omitempty"`
	EffectiveStock int               `json:"effectiveStock"`
	StockStatus    string            `json:"stockStatus,omitempty"`
	StockValue     decimal.Decimal   `json:"stockValue"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// ProductListResponse liste paginée de produits.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
