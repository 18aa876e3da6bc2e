package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// CollectionRepository port de persistance des collections.
type CollectionRepository interface {
	Create(c *entity.Collection) error
	GetByID(id string) (*entity.Collection, error)
	Update(c *entity.Collection) error
	List() ([]*entity.Collection, error)
	Delete(id string) error
}
