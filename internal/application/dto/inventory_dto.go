package dto

import "time"

// RegisterMovementRequest entrée de POST /inventory/movements.
// Quantity est signée pour ADJUSTMENT (nouveau - ancien), positive pour IN/OUT.
type RegisterMovementRequest struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Type      string `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// SetStockRequest entrée de PATCH /inventory/stock : pose directe du stock.
type SetStockRequest struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	NewStock  int    `json:"newStock"`
	Reason    string `json:"reason"`
}

// MovementResponse sortie d'un mouvement persisté.
type MovementResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	VariantID     string    `json:"variantId,omitempty"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy,omitempty"`
}

// MovementListResponse liste paginée de mouvements.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockAlertResponse un produit sous son seuil (écran des alertes).
type StockAlertResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	EffectiveStock int    `json:"effectiveStock"`
	LowStock       int    `json:"lowStock"`
	Status         string `json:"status"`
	AlertLevel     string `json:"alertLevel"`
}
