package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

// CategoryUseCase CRUD des catégories (hiérarchiques via parentId).
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construit le cas d'usage.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crée une catégorie. Le parent doit exister s'il est renseigné.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "active"
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		ParentID:    in.ParentID,
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// Update met à jour une catégorie, nil si absente.
func (uc *CategoryUseCase) Update(id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.ParentID == id {
		return nil, domain.ErrInvalidInput // une catégorie ne peut pas être son propre parent
	}
	c.Name = in.Name
	c.Description = in.Description
	c.ParentID = in.ParentID
	if in.Status != "" {
		c.Status = in.Status
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List renvoie toutes les catégories.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID renvoie une catégorie, nil si absente.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCategoryResponse(c), nil
}

// Delete supprime une catégorie.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		Description: c.Description,
		Status:      c.Status,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
