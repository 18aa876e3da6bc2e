package content

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/content"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

// SectionUseCase gestion des sections de la page d'accueil : CRUD, visibilité,
// duplication et réordonnancement en bloc. Le champ Order reste dense et
// unique, renuméroté 1..n à chaque écriture d'ordre.
type SectionUseCase struct {
	repo repository.HomeSectionRepository
}

// NewSectionUseCase construit le cas d'usage.
func NewSectionUseCase(repo repository.HomeSectionRepository) *SectionUseCase {
	return &SectionUseCase{repo: repo}
}

// Create crée une section en fin de liste. Le contenu est normalisé
// (hydraté avec les valeurs par défaut) avant persistance.
func (uc *SectionUseCase) Create(in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	normalized, err := content.Normalize(in.Type, in.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	maxOrder, err := uc.repo.MaxOrder()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	s := &entity.HomeSection{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		Content:     normalized,
		IsVisible:   true,
		Order:       maxOrder + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsVisible != nil {
		s.IsVisible = *in.IsVisible
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSectionResponse(s), nil
}

// GetByID renvoie une section, nil si absente.
func (uc *SectionUseCase) GetByID(id string) (*dto.SectionResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSectionResponse(s), nil
}

// List renvoie toutes les sections triées par Order croissant.
func (uc *SectionUseCase) List() (*dto.SectionListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SectionResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSectionResponse(s))
	}
	return &dto.SectionListResponse{Items: items}, nil
}

// Update mise à jour partielle. Un Content fourni est re-normalisé selon le
// type existant de la section. Le type lui-même est immuable.
func (uc *SectionUseCase) Update(id string, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Title != nil {
		s.Title = *in.Title
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.IsVisible != nil {
		s.IsVisible = *in.IsVisible
	}
	if in.Content != nil {
		normalized, err := content.Normalize(s.Type, in.Content)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		s.Content = normalized
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSectionResponse(s), nil
}

// ToggleVisibility inverse la visibilité de la section.
func (uc *SectionUseCase) ToggleVisibility(id string) (*dto.SectionResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	s.IsVisible = !s.IsVisible
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSectionResponse(s), nil
}

// Duplicate copie une section en fin de liste. La copie porte le suffixe
// " (Copie)" et est toujours créée masquée, quel que soit l'original.
func (uc *SectionUseCase) Duplicate(id string) (*dto.SectionResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	maxOrder, err := uc.repo.MaxOrder()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	copySection := &entity.HomeSection{
		ID:          uuid.New().String(),
		Title:       s.Title + content.CopySuffix,
		Description: s.Description,
		Type:        s.Type,
		Content:     append(json.RawMessage(nil), s.Content...),
		IsVisible:   false,
		Order:       maxOrder + 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(copySection); err != nil {
		return nil, err
	}
	return toSectionResponse(copySection), nil
}

// Reorder applique l'ordre demandé puis renumérote 1..n. Les sections absentes
// de la requête conservent leur position relative, après celles fournies de
// même rang.
func (uc *SectionUseCase) Reorder(in dto.ReorderSectionsRequest) (*dto.SectionListResponse, error) {
	if len(in.Sections) == 0 {
		return nil, fmt.Errorf("%w: aucune section fournie", domain.ErrInvalidInput)
	}
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.HomeSection, len(list))
	for _, s := range list {
		byID[s.ID] = s
	}
	requested := make(map[string]int, len(in.Sections))
	for _, r := range in.Sections {
		if _, ok := byID[r.ID]; !ok {
			return nil, fmt.Errorf("%w: section inconnue: %s", domain.ErrInvalidInput, r.ID)
		}
		if _, dup := requested[r.ID]; dup {
			return nil, fmt.Errorf("%w: section en double: %s", domain.ErrInvalidInput, r.ID)
		}
		requested[r.ID] = r.Order
	}

	ordered := make([]*entity.HomeSection, len(list))
	copy(ordered, list)
	rank := func(s *entity.HomeSection) int {
		if o, ok := requested[s.ID]; ok {
			return o
		}
		return s.Order
	}
	// tri stable : en cas d'égalité de rang, l'ordre existant départage
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && rank(ordered[j]) < rank(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	orders := make([]repository.SectionOrder, 0, len(ordered))
	for i, s := range ordered {
		s.Order = i + 1
		orders = append(orders, repository.SectionOrder{ID: s.ID, Order: s.Order})
	}
	if err := uc.repo.Reorder(orders); err != nil {
		return nil, err
	}
	items := make([]dto.SectionResponse, 0, len(ordered))
	for _, s := range ordered {
		items = append(items, *toSectionResponse(s))
	}
	return &dto.SectionListResponse{Items: items}, nil
}

// Delete supprime la section puis renumérote les survivantes pour que l'ordre
// reste dense.
func (uc *SectionUseCase) Delete(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	list, err := uc.repo.List()
	if err != nil {
		return err
	}
	orders := make([]repository.SectionOrder, 0, len(list))
	for i, remaining := range list {
		orders = append(orders, repository.SectionOrder{ID: remaining.ID, Order: i + 1})
	}
	return uc.repo.Reorder(orders)
}

// GetCollectionItems renvoie les items et la config du carrousel d'une section
// collection, hydratés (ordre renuméroté, valeurs par défaut appliquées).
func (uc *SectionUseCase) GetCollectionItems(id string) (*dto.CollectionItemsResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if s.Type != entity.SectionTypeCollection {
		return nil, fmt.Errorf("%w: la section %s n'est pas de type collection", domain.ErrInvalidInput, id)
	}
	c, err := content.HydrateCollection(s.Content)
	if err != nil {
		return nil, err
	}
	items, err := json.Marshal(c.Items)
	if err != nil {
		return nil, err
	}
	cfg, err := json.Marshal(c.CarouselConfig)
	if err != nil {
		return nil, err
	}
	return &dto.CollectionItemsResponse{SectionID: s.ID, Items: items, CarouselConfig: cfg}, nil
}

// PutCollectionItems remplace en bloc les items (et la config si fournie)
// d'une section collection. Les ordres sont renumérotés 0..n-1 et les clés
// inconnues du blob existant sont conservées.
func (uc *SectionUseCase) PutCollectionItems(id string, in dto.CollectionItemsRequest) (*dto.CollectionItemsResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if s.Type != entity.SectionTypeCollection {
		return nil, fmt.Errorf("%w: la section %s n'est pas de type collection", domain.ErrInvalidInput, id)
	}
	c, err := content.HydrateCollection(s.Content)
	if err != nil {
		return nil, err
	}
	var items []content.CollectionItem
	if err := json.Unmarshal(in.Items, &items); err != nil {
		return nil, fmt.Errorf("%w: items invalides: %v", domain.ErrInvalidInput, err)
	}
	if len(items) == 0 {
		return nil, domain.ErrLastItem
	}
	c.SetItems(items)
	if in.CarouselConfig != nil {
		if err := json.Unmarshal(in.CarouselConfig, &c.CarouselConfig); err != nil {
			return nil, fmt.Errorf("%w: config de carrousel invalide: %v", domain.ErrInvalidInput, err)
		}
	}
	blob, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	s.Content = blob
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	outItems, err := json.Marshal(c.Items)
	if err != nil {
		return nil, err
	}
	outCfg, err := json.Marshal(c.CarouselConfig)
	if err != nil {
		return nil, err
	}
	return &dto.CollectionItemsResponse{SectionID: s.ID, Items: outItems, CarouselConfig: outCfg}, nil
}

func toSectionResponse(s *entity.HomeSection) *dto.SectionResponse {
	return &dto.SectionResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		Content:     s.Content,
		IsVisible:   s.IsVisible,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
