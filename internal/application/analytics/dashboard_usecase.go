package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain/repository"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

// Cache port de cache clé/valeur avec TTL. Get renvoie ("", false, nil)
// en cas de miss.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardUseCase agrégats du tableau de bord. Les chiffres sont calculés
// sur le stock effectif et mis en cache brièvement : le tableau de bord est
// rechargé bien plus souvent que le stock ne bouge.
type DashboardUseCase struct {
	products repository.ProductRepository
	sections repository.HomeSectionRepository
	cache    Cache
}

// NewDashboardUseCase construit le cas d'usage. cache peut être nil.
func NewDashboardUseCase(products repository.ProductRepository, sections repository.HomeSectionRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{products: products, sections: sections, cache: cache}
}

// Summary renvoie les agrégats, depuis le cache si possible.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, dashboardCacheKey); err == nil && ok {
			var resp dto.DashboardResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return &resp, nil
			}
		}
	}

	resp, err := uc.compute()
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		if blob, err := json.Marshal(resp); err == nil {
			// une erreur de cache ne doit pas faire échouer le tableau de bord
			_ = uc.cache.Set(ctx, dashboardCacheKey, string(blob), dashboardCacheTTL)
		}
	}
	return resp, nil
}

func (uc *DashboardUseCase) compute() (*dto.DashboardResponse, error) {
	products, err := uc.products.List(repository.ProductFilter{IncludeVariants: true, Limit: 10000})
	if err != nil {
		return nil, err
	}
	resp := &dto.DashboardResponse{
		ProductCount: len(products),
		StockValue:   decimal.Zero,
	}
	for _, p := range products {
		effective := stock.EffectiveStock(p)
		resp.TotalStock += effective
		resp.StockValue = resp.StockValue.Add(stock.Value(effective, p.Price))
		if !p.TrackStock {
			continue
		}
		switch stock.StatusOf(p) {
		case stock.StatusOutOfStock:
			resp.OutOfStockCount++
		case stock.StatusLowStock:
			resp.LowStockCount++
		default:
			resp.InStockCount++
		}
	}

	sections, err := uc.sections.List()
	if err != nil {
		return nil, err
	}
	resp.SectionCount = len(sections)
	for _, s := range sections {
		if s.IsVisible {
			resp.VisibleSections++
		}
	}
	return resp, nil
}
