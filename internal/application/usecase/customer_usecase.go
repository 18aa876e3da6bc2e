package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

// CustomerUseCase CRUD des clients de la boutique.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construit le cas d'usage.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crée un client. L'email est unique.
func (uc *CustomerUseCase) Create(in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	c := &entity.Customer{
		ID:        uuid.New().String(),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// Update met à jour un client, nil si absent.
func (uc *CustomerUseCase) Update(id string, in dto.CustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Email != c.Email {
		other, _ := uc.repo.GetByEmail(in.Email)
		if other != nil && other.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	c.Email = in.Email
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Phone = in.Phone
	c.Address = in.Address
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// GetByID renvoie un client, nil si absent.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCustomerResponse(c), nil
}

// List liste les clients paginés.
func (uc *CustomerUseCase) List(page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete supprime un client.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
