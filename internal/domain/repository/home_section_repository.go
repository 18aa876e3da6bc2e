package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// SectionOrder paire (section, ordre) pour le réordonnancement en bloc.
type SectionOrder struct {
	ID    string
	Order int
}

// HomeSectionRepository port de persistance des sections d'accueil.
type HomeSectionRepository interface {
	Create(s *entity.HomeSection) error
	GetByID(id string) (*entity.HomeSection, error)
	Update(s *entity.HomeSection) error
	List() ([]*entity.HomeSection, error) // triées par Order croissant
	Reorder(orders []SectionOrder) error  // écrit tous les ordres d'un coup
	Delete(id string) error
	MaxOrder() (int, error)
}
