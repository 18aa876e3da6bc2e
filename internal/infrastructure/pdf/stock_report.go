// Package pdf génère le rapport d'inventaire imprimable.
//
// Mise en page A4 :
//
//	┌──────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : nom de la boutique │ date d'édition            │
//	│  ──────────────────────────────────────────────────────  │
//	│  TABLE : SKU | Produit | Stock | Seuil | Statut | Valeur  │
//	│  ──────────────────────────────────────────────────────  │
//	│  TOTAUX : unités en stock / valeur totale du stock        │
//	└──────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// StockReportGenerator génère le rapport d'inventaire avec Maroto v2.
type StockReportGenerator struct {
	shopName string
}

// NewStockReportGenerator construit le générateur.
func NewStockReportGenerator(shopName string) *StockReportGenerator {
	return &StockReportGenerator{shopName: shopName}
}

// Generate produit le PDF du rapport et renvoie ses octets. Les produits sont
// rendus dans l'ordre reçu, les chiffres sont ceux du stock effectif.
func (g *StockReportGenerator) Generate(products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Rapport d'inventaire", true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	totalUnits := 0
	totalValue := decimal.Zero
	for _, p := range products {
		effective := stock.EffectiveStock(p)
		totalUnits += effective
		totalValue = totalValue.Add(stock.Value(effective, p.Price))
		m.AddRows(productRow(p, effective))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(len(products), totalUnits, totalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow : nom de la boutique (gauche) et date d'édition (droite).
func (g *StockReportGenerator) headerRow() core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.shopName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Rapport d'inventaire", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Édité le "+time.Now().Format("02/01/2006 à 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Produit", 4, align.Left),
		h("Stock", 1, align.Right),
		h("Seuil", 1, align.Right),
		h("Statut", 2, align.Center),
		h("Valeur", 2, align.Right),
	)
}

// productRow : une ligne par produit, le statut en rouge quand le stock est bas.
func productRow(p *entity.Product, effective int) core.Row {
	status := "—"
	statusColor := colorGray
	if p.TrackStock {
		switch stock.StatusFor(effective, stock.Threshold(p)) {
		case stock.StatusOutOfStock:
			status = "Épuisé"
			statusColor = colorAlert
		case stock.StatusLowStock:
			status = "Stock bas"
			statusColor = colorAlert
		default:
			status = "En stock"
		}
	}
	value := stock.Value(effective, p.Price)
	return row.New(6).Add(
		col.New(2).Add(text.New(p.SKU, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", effective), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", stock.Threshold(p)), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
		col.New(2).Add(text.New(value.StringFixed(2)+" €", props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func totalsRow(productCount, totalUnits int, totalValue decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(18).Add(
		col.New(6),
		col.New(3).Add(
			label("Produits :"),
			label("Unités en stock :"),
			label("Valeur du stock :"),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", productCount)),
			value(fmt.Sprintf("%d", totalUnits)),
			value(totalValue.StringFixed(2)+" €"),
		),
	)
}
