package inventory

import (
	"context"

	"github.com/marchand/boutique-api/internal/domain/repository"
)

// Repos dépôts liés à une même transaction.
type Repos struct {
	Products  repository.ProductRepository
	Movements repository.StockMovementRepository
}

// TxRunner exécute fn dans une transaction. Les dépôts passés à fn sont liés
// à cette transaction : tout échec de fn annule l'ensemble.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
