package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

func produit(base int, variantes ...int) *entity.Product {
	p := &entity.Product{Stock: base, LowStock: 5, TrackStock: true}
	for _, s := range variantes {
		p.Variants = append(p.Variants, entity.ProductVariant{Stock: s})
	}
	return p
}

// Avec des variantes, le stock effectif est la somme des stocks des variantes,
// quel que soit le champ Stock de base.
func TestEffectiveStock_AvecVariantes_SommeDesVariantes(t *testing.T) {
	p := produit(999, 3, 4, 5)
	assert.Equal(t, 12, stock.EffectiveStock(p),
		"le champ Stock brut ne doit pas intervenir quand il y a des variantes")
}

// Sans variantes, le stock effectif est le stock de base.
func TestEffectiveStock_SansVariantes_StockDeBase(t *testing.T) {
	assert.Equal(t, 7, stock.EffectiveStock(produit(7)))
	assert.Equal(t, 0, stock.EffectiveStock(produit(0)))
}

func TestStatusFor_Bornes(t *testing.T) {
	cases := []struct {
		name      string
		effective int
		lowStock  int
		want      stock.Status
	}{
		{"stock nul", 0, 5, stock.StatusOutOfStock},
		{"egal au seuil", 5, 5, stock.StatusLowStock},
		{"seuil plus un", 6, 5, stock.StatusInStock},
		{"juste au dessus de zero", 1, 5, stock.StatusLowStock},
		{"seuil zero retombe sur le defaut", 5, 0, stock.StatusLowStock},
		{"seuil zero au dessus du defaut", 6, 0, stock.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.StatusFor(tc.effective, tc.lowStock))
		})
	}
}

// Scénario de classification des alertes : seuil 10, sans variantes.
func TestAlertFor_Classification(t *testing.T) {
	// 3 <= floor(10/2) -> critical
	assert.Equal(t, stock.AlertCritical, stock.AlertFor(3, 10))
	// 8 entre floor(10/2)+1 et 10 -> warning
	assert.Equal(t, stock.AlertWarning, stock.AlertFor(8, 10))
	// stock nul -> critical
	assert.Equal(t, stock.AlertCritical, stock.AlertFor(0, 10))
	// au-dessus du seuil -> pas d'alerte
	assert.Equal(t, stock.AlertNone, stock.AlertFor(11, 10))
	// borne exacte de la moitié
	assert.Equal(t, stock.AlertCritical, stock.AlertFor(5, 10))
	assert.Equal(t, stock.AlertWarning, stock.AlertFor(6, 10))
}

func TestStatusOf_ProduitAvecVariantes(t *testing.T) {
	// base à 0 mais variantes bien fournies : in_stock
	p := produit(0, 10, 10)
	assert.Equal(t, stock.StatusInStock, stock.StatusOf(p))

	// base élevée mais variantes vides : out_of_stock
	p = produit(50, 0, 0)
	assert.Equal(t, stock.StatusOutOfStock, stock.StatusOf(p))
}

// Le tri par stock ordonne strictement par stock effectif pour un mélange de
// produits avec et sans variantes.
func TestSortByEffectiveStock_MelangeVariantesEtBase(t *testing.T) {
	a := produit(100, 1)    // effectif 1, brut trompeur
	b := produit(2)         // effectif 2
	c := produit(0, 5, 5)   // effectif 10
	d := produit(3)         // effectif 3
	list := []*entity.Product{c, a, d, b}

	stock.SortByEffectiveStock(list, true)
	assert.Equal(t, []*entity.Product{a, b, d, c}, list)

	stock.SortByEffectiveStock(list, false)
	assert.Equal(t, []*entity.Product{c, d, b, a}, list)
}

// La valeur de stock utilise le stock effectif, pas le champ brut.
func TestValue_UtiliseLeStockEffectif(t *testing.T) {
	p := produit(999, 2, 3)
	price := decimal.NewFromFloat(19.90)
	got := stock.Value(stock.EffectiveStock(p), price)
	assert.True(t, got.Equal(decimal.NewFromFloat(99.50)), "attendu 99.50, obtenu %s", got)
}
