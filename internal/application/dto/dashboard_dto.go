package dto

import "github.com/shopspring/decimal"

// DashboardResponse agrégats du tableau de bord. Tous les chiffres de stock
// sont calculés sur le stock effectif (variantes sommées).
type DashboardResponse struct {
	ProductCount    int             `json:"productCount"`
	TotalStock      int             `json:"totalStock"`
	StockValue      decimal.Decimal `json:"stockValue"`
	InStockCount    int             `json:"inStockCount"`
	LowStockCount   int             `json:"lowStockCount"`
	OutOfStockCount int             `json:"outOfStockCount"`
	SectionCount    int             `json:"sectionCount"`
	VisibleSections int             `json:"visibleSections"`
}
