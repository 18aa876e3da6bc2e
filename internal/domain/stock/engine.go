// Package stock implémente le calcul du stock effectif d'un produit
// (service de domaine pur, sans effet de bord).
//
// Règle unique, appliquée partout où un stock est affiché, trié ou agrégé :
// le stock effectif est la somme des stocks des variantes quand il y en a,
// sinon le stock de base du produit. Toute divergence entre le champ Stock
// brut et le stock effectif est attendue et tolérée en présence de variantes.
package stock

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marchand/boutique-api/internal/domain/entity"
)

// DefaultLowStock seuil d'alerte par défaut quand le produit n'en définit pas.
const DefaultLowStock = 5

// Status statut de stock dérivé (jamais persisté).
type Status string

const (
	StatusInStock    Status = "in_stock"
	StatusLowStock   Status = "low_stock"
	StatusOutOfStock Status = "out_of_stock"
)

// AlertLevel niveau d'alerte sur l'écran des alertes.
type AlertLevel string

const (
	AlertNone     AlertLevel = ""
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// EffectiveStock renvoie le stock effectif d'un produit : somme des stocks des
// variantes si la liste est non vide, sinon le stock de base.
func EffectiveStock(p *entity.Product) int {
	if len(p.Variants) == 0 {
		return p.Stock
	}
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// Threshold renvoie le seuil d'alerte du produit, ou DefaultLowStock s'il n'est pas défini.
func Threshold(p *entity.Product) int {
	if p.LowStock > 0 {
		return p.LowStock
	}
	return DefaultLowStock
}

// StatusFor calcule le statut tri-état à partir du stock effectif et du seuil.
// Bornes : effective == lowStock -> low_stock ; effective == lowStock+1 -> in_stock.
func StatusFor(effective, lowStock int) Status {
	if lowStock <= 0 {
		lowStock = DefaultLowStock
	}
	switch {
	case effective <= 0:
		return StatusOutOfStock
	case effective <= lowStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// AlertFor calcule le niveau d'alerte : critical si le stock est nul ou
// inférieur ou égal à la moitié (entière) du seuil, warning si le produit est
// simplement sous le seuil, sinon aucun.
func AlertFor(effective, lowStock int) AlertLevel {
	if lowStock <= 0 {
		lowStock = DefaultLowStock
	}
	switch {
	case effective <= 0:
		return AlertCritical
	case effective > lowStock:
		return AlertNone
	case effective <= lowStock/2:
		return AlertCritical
	default:
		return AlertWarning
	}
}

// StatusOf raccourci : statut d'un produit à partir de ses propres champs.
func StatusOf(p *entity.Product) Status {
	return StatusFor(EffectiveStock(p), Threshold(p))
}

// AlertOf raccourci : niveau d'alerte d'un produit.
func AlertOf(p *entity.Product) AlertLevel {
	return AlertFor(EffectiveStock(p), Threshold(p))
}

// Value renvoie la valeur de stock estimée : stock effectif × prix.
// Toujours basée sur le stock effectif, jamais sur le champ brut.
func Value(effective int, price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(effective)))
}

// SortByEffectiveStock trie les produits strictement par stock effectif
// (jamais par le champ Stock brut). Tri stable pour garder un ordre
// déterministe entre produits à stock égal.
func SortByEffectiveStock(products []*entity.Product, ascending bool) {
	sort.SliceStable(products, func(i, j int) bool {
		si, sj := EffectiveStock(products[i]), EffectiveStock(products[j])
		if ascending {
			return si < sj
		}
		return si > sj
	})
}
