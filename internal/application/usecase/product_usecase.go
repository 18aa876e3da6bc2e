package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
	"github.com/marchand/boutique-api/internal/domain/search"
	"github.com/marchand/boutique-api/internal/domain/stock"
)

// ProductUseCase CRUD du catalogue. Le stock se modifie via les mouvements
// d'inventaire, jamais par Update.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construit le cas d'usage.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// ListProductsQuery critères de GET /products.
type ListProductsQuery struct {
	Query           string // recherche insensible aux accents sur nom et SKU
	CategoryID      string
	SortByStock     bool
	Ascending       bool
	IncludeVariants bool
	Limit           int
	Offset          int
}

// Create crée un produit avec ses éventuelles variantes.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Stock < 0 {
		return nil, domain.ErrStockNegative
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		LowStock:    in.LowStock,
		TrackStock:  true,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.LowStock <= 0 {
		p.LowStock = stock.DefaultLowStock
	}
	if in.TrackStock != nil {
		p.TrackStock = *in.TrackStock
	}
	p.Variants = buildVariants(p.ID, in.Variants, now)
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toProductResponse(p, true), nil
}

// GetByID renvoie un produit, nil si absent.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toProductResponse(p, true), nil
}

// Update met à jour un produit. Si Variants est fourni, la liste est
// remplacée en bloc (les stocks de variantes fournis sont conservés).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.LowStock != nil {
		p.LowStock = *in.LowStock
	}
	if in.TrackStock != nil {
		p.TrackStock = *in.TrackStock
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	if in.Variants != nil {
		p.Variants = buildVariants(p.ID, in.Variants, p.UpdatedAt)
		if err := uc.repo.ReplaceVariants(p.ID, p.Variants); err != nil {
			return nil, err
		}
	}
	return toProductResponse(p, true), nil
}

// List liste les produits. Le tri par stock utilise toujours le stock
// effectif, jamais le champ brut.
func (uc *ProductUseCase) List(q ListProductsQuery) (*dto.ProductListResponse, error) {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	// Les variantes sont toujours chargées : le stock effectif en dépend.
	// La recherche et le tri se font en mémoire sur la page élargie.
	list, err := uc.repo.List(repository.ProductFilter{
		IncludeVariants: true,
		CategoryID:      q.CategoryID,
		Limit:           q.Limit,
		Offset:          q.Offset,
	})
	if err != nil {
		return nil, err
	}
	if q.Query != "" {
		filtered := list[:0]
		for _, p := range list {
			if search.Matches(p.Name, q.Query) || search.Matches(p.SKU, q.Query) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	if q.SortByStock {
		stock.SortByEffectiveStock(list, q.Ascending)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, q.IncludeVariants))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

// Delete supprime un produit.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildVariants(productID string, in []dto.VariantRequest, now time.Time) []entity.ProductVariant {
	variants := make([]entity.ProductVariant, 0, len(in))
	for i, v := range in {
		id := v.ID
		if id == "" {
			id = uuid.New().String()
		}
		s := v.Stock
		if s < 0 {
			s = 0
		}
		variants = append(variants, entity.ProductVariant{
			ID:        id,
			ProductID: productID,
			Name:      v.Name,
			SKU:       v.SKU,
			Price:     v.Price,
			Stock:     s,
			Position:  i,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return variants
}

// toProductResponse projette l'entité et ses champs dérivés du moteur de stock.
func toProductResponse(p *entity.Product, includeVariants bool) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	effective := stock.EffectiveStock(p)
	resp := &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Stock:          p.Stock,
		LowStock:       stock.Threshold(p),
		TrackStock:     p.TrackStock,
		CategoryID:     p.CategoryID,
		ImageURL:       p.ImageURL,
		EffectiveStock: effective,
		StockValue:     stock.Value(effective, p.Price),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.TrackStock {
		resp.StockStatus = string(stock.StatusFor(effective, stock.Threshold(p)))
	}
	if includeVariants {
		resp.Variants = make([]dto.VariantResponse, 0, len(p.Variants))
		for _, v := range p.Variants {
			resp.Variants = append(resp.Variants, dto.VariantResponse{
				ID: v.ID, Name: v.Name, SKU: v.SKU, Price: v.Price, Stock: v.Stock,
			})
		}
	}
	return resp
}
