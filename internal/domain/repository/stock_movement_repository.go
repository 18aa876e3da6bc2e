package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// StockMovementRepository port de persistance de l'historique de stock.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
