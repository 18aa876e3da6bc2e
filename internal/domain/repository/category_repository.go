package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// CategoryRepository port de persistance des catégories.
type CategoryRepository interface {
	Create(c *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(c *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}
