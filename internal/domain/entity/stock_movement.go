package entity

import "time"

// Types de mouvement de stock.
const (
	MovementTypeIN         = "IN"
	MovementTypeOUT        = "OUT"
	MovementTypeADJUSTMENT = "ADJUSTMENT"
)

// StockMovement trace un changement de stock (entrée, sortie ou ajustement).
// Quantity est signée pour les ajustements (nouveau - ancien).
// PreviousStock/NewStock figent l'avant/après au moment du mouvement :
// l'historique reste lisible même si le produit est modifié ensuite.
type StockMovement struct {
	ID            string
	ProductID     string
	VariantID     string // vide = stock de base du produit
	Type          string // IN, OUT, ADJUSTMENT
	Quantity      int
	PreviousStock int
	NewStock      int
	Reason        string
	CreatedAt     time.Time
	CreatedBy     string // UserID
}
