package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// CustomerRepository port de persistance des clients.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	Update(c *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
