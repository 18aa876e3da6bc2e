package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

// CollectionUseCase CRUD des collections éditoriales.
type CollectionUseCase struct {
	repo repository.CollectionRepository
}

// NewCollectionUseCase construit le cas d'usage.
func NewCollectionUseCase(repo repository.CollectionRepository) *CollectionUseCase {
	return &CollectionUseCase{repo: repo}
}

// Create crée une collection (active par défaut).
func (uc *CollectionUseCase) Create(in dto.CollectionRequest) (*dto.CollectionResponse, error) {
	now := time.Now()
	c := &entity.Collection{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCollectionResponse(c), nil
}

// Update met à jour une collection, nil si absente.
func (uc *CollectionUseCase) Update(id string, in dto.CollectionRequest) (*dto.CollectionResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	c.Name = in.Name
	c.Description = in.Description
	c.ImageURL = in.ImageURL
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCollectionResponse(c), nil
}

// List renvoie toutes les collections.
func (uc *CollectionUseCase) List() ([]dto.CollectionResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CollectionResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCollectionResponse(c))
	}
	return items, nil
}

// GetByID renvoie une collection, nil si absente.
func (uc *CollectionUseCase) GetByID(id string) (*dto.CollectionResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCollectionResponse(c), nil
}

// Delete supprime une collection.
func (uc *CollectionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCollectionResponse(c *entity.Collection) *dto.CollectionResponse {
	return &dto.CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
