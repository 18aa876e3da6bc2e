package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, variant_id, type, quantity, previous_stock, new_stock, reason, created_at, created_by`

// StockMovementRepo implémentation du port StockMovementRepository sur PostgreSQL.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construit l'adaptateur. Passer le pool ou une tx.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un mouvement. L'historique est en append-only : jamais
// d'update ni de delete.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, NULLIF($10, ''))`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.VariantID, m.Type, m.Quantity,
		m.PreviousStock, m.NewStock, m.Reason, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct historique d'un produit, le plus récent d'abord.
func (r *StockMovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, COALESCE(variant_id, ''), type, quantity, previous_stock, new_stock, reason, created_at, COALESCE(created_by, '')
		FROM stock_movements WHERE product_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

// List historique global, le plus récent d'abord.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, COALESCE(variant_id, ''), type, quantity, previous_stock, new_stock, reason, created_at, COALESCE(created_by, '')
		FROM stock_movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		err := rows.Scan(
			&m.ID, &m.ProductID, &m.VariantID, &m.Type, &m.Quantity,
			&m.PreviousStock, &m.NewStock, &m.Reason, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
