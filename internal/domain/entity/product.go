package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product représente un produit du catalogue.
// Stock est le stock de base, significatif uniquement sans variantes :
// dès qu'il existe des variantes, le stock effectif est la somme de leurs stocks
// et le champ Stock devient purement informatif (legacy).
type Product struct {
	ID          string
	SKU         string
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int  // stock de base (manuel)
	LowStock    int  // seuil d'alerte, 5 par défaut
	TrackStock  bool // false = le statut de stock n'est ni calculé ni affiché
	CategoryID  string
	ImageURL    string
	Variants    []ProductVariant // ordonnées, éventuellement vide
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariant déclinaison d'un produit (taille, couleur, ...).
type ProductVariant struct {
	ID        string
	ProductID string
	Name      string
	SKU       string
	Price     *decimal.Decimal // remplace le prix du produit quand défini
	Stock     int              // >= 0
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePrice renvoie le prix de la variante si défini, sinon celui du produit.
func (v ProductVariant) EffectivePrice(product *Product) decimal.Decimal {
	if v.Price != nil {
		return *v.Price
	}
	return product.Price
}
