package analytics

import (
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

// ReportGenerator port de rendu du rapport d'inventaire.
type ReportGenerator interface {
	Generate(products []*entity.Product) ([]byte, error)
}

// ReportUseCase produit le rapport d'inventaire imprimable.
type ReportUseCase struct {
	products repository.ProductRepository
	gen      ReportGenerator
}

// NewReportUseCase construit le cas d'usage.
func NewReportUseCase(products repository.ProductRepository, gen ReportGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, gen: gen}
}

// StockReport génère le PDF, produits les plus bas en stock d'abord.
func (uc *ReportUseCase) StockReport() ([]byte, error) {
	products, err := uc.products.List(repository.ProductFilter{IncludeVariants: true, Limit: 10000})
	if err != nil {
		return nil, err
	}
	stock.SortByEffectiveStock(products, true)
	return uc.gen.Generate(products)
}
