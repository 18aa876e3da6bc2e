package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

// UseCase mouvements de stock et alertes. Chaque changement de stock passe par
// un mouvement persisté dans la même transaction que la mise à jour du stock.
type UseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	tx        TxRunner
}

// NewUseCase construit le cas d'usage.
func NewUseCase(products repository.ProductRepository, movements repository.StockMovementRepository, tx TxRunner) *UseCase {
	return &UseCase{products: products, movements: movements, tx: tx}
}

// RegisterMovement enregistre un mouvement IN, OUT ou ADJUSTMENT et applique
// le nouveau stock. Quantity est positive pour IN/OUT, signée pour ADJUSTMENT.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	switch in.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la quantité doit être positive pour %s", domain.ErrInvalidInput, in.Type)
		}
	case entity.MovementTypeADJUSTMENT:
		if in.Quantity == 0 {
			return nil, fmt.Errorf("%w: ajustement sans différence", domain.ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: type de mouvement inconnu: %s", domain.ErrInvalidInput, in.Type)
	}

	var resp *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		previous, err := currentStock(r.Products, in.ProductID, in.VariantID)
		if err != nil {
			return err
		}
		newStock := previous
		switch in.Type {
		case entity.MovementTypeIN:
			newStock = previous + in.Quantity
		case entity.MovementTypeOUT:
			newStock = previous - in.Quantity
		case entity.MovementTypeADJUSTMENT:
			newStock = previous + in.Quantity
		}
		if newStock < 0 {
			return domain.ErrStockNegative
		}
		m := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     in.ProductID,
			VariantID:     in.VariantID,
			Type:          in.Type,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      newStock,
			Reason:        in.Reason,
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
		}
		if m.Reason == "" && in.Type == entity.MovementTypeADJUSTMENT {
			m.Reason = fmt.Sprintf("Ajustement: %d → %d", previous, newStock)
		}
		if err := applyStock(r.Products, in.ProductID, in.VariantID, newStock); err != nil {
			return err
		}
		if err := r.Movements.Create(m); err != nil {
			return err
		}
		resp = toMovementResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SetStock pose directement le stock à une valeur. Traduit en mouvement
// ADJUSTMENT dont la quantité est la différence signée.
func (uc *UseCase) SetStock(ctx context.Context, userID string, in dto.SetStockRequest) (*dto.MovementResponse, error) {
	if in.NewStock < 0 {
		return nil, domain.ErrStockNegative
	}
	var resp *dto.MovementResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		previous, err := currentStock(r.Products, in.ProductID, in.VariantID)
		if err != nil {
			return err
		}
		if previous == in.NewStock {
			return fmt.Errorf("%w: le stock vaut déjà %d", domain.ErrInvalidInput, previous)
		}
		m := &entity.StockMovement{
			ID:            uuid.New().String(),
			ProductID:     in.ProductID,
			VariantID:     in.VariantID,
			Type:          entity.MovementTypeADJUSTMENT,
			Quantity:      in.NewStock - previous,
			PreviousStock: previous,
			NewStock:      in.NewStock,
			Reason:        in.Reason,
			CreatedAt:     time.Now(),
			CreatedBy:     userID,
		}
		if m.Reason == "" {
			m.Reason = fmt.Sprintf("Ajustement: %d → %d", previous, in.NewStock)
		}
		if err := applyStock(r.Products, in.ProductID, in.VariantID, in.NewStock); err != nil {
			return err
		}
		if err := r.Movements.Create(m); err != nil {
			return err
		}
		resp = toMovementResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListMovements historique, global ou par produit.
func (uc *UseCase) ListMovements(productID string, page dto.PageRequest) (*dto.MovementListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.StockMovement
		err  error
	)
	if productID != "" {
		list, err = uc.movements.ListByProduct(productID, page.Limit, page.Offset)
	} else {
		list, err = uc.movements.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Alerts liste les produits suivis sous leur seuil, les plus critiques
// d'abord (stock effectif croissant).
func (uc *UseCase) Alerts() ([]dto.StockAlertResponse, error) {
	list, err := uc.products.List(repository.ProductFilter{IncludeVariants: true, Limit: 1000})
	if err != nil {
		return nil, err
	}
	tracked := list[:0]
	for _, p := range list {
		if !p.TrackStock {
			continue
		}
		if stock.AlertOf(p) == stock.AlertNone {
			continue
		}
		tracked = append(tracked, p)
	}
	stock.SortByEffectiveStock(tracked, true)
	alerts := make([]dto.StockAlertResponse, 0, len(tracked))
	for _, p := range tracked {
		effective := stock.EffectiveStock(p)
		alerts = append(alerts, dto.StockAlertResponse{
			ProductID:      p.ID,
			Name:           p.Name,
			SKU:            p.SKU,
			EffectiveStock: effective,
			LowStock:       stock.Threshold(p),
			Status:         string(stock.StatusOf(p)),
			AlertLevel:     string(stock.AlertOf(p)),
		})
	}
	return alerts, nil
}

// currentStock lit le stock courant du produit ou de la variante visée.
func currentStock(products repository.ProductRepository, productID, variantID string) (int, error) {
	if variantID != "" {
		v, err := products.GetVariant(variantID)
		if err != nil {
			return 0, err
		}
		if v == nil || v.ProductID != productID {
			return 0, domain.ErrNotFound
		}
		return v.Stock, nil
	}
	p, err := products.GetByID(productID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, domain.ErrNotFound
	}
	return p.Stock, nil
}

func applyStock(products repository.ProductRepository, productID, variantID string, newStock int) error {
	if variantID != "" {
		return products.UpdateVariantStock(variantID, newStock)
	}
	return products.UpdateStock(productID, newStock)
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:            m.ID,
		ProductID:     m.ProductID,
		VariantID:     m.VariantID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		PreviousStock: m.PreviousStock,
		NewStock:      m.NewStock,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
