package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// UserRepository port de persistance des utilisateurs du back-office.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
}
