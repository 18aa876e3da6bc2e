package repository

import "github.com/marchand/boutique-api/internal/domain/entity"

// MediaRepository port de persistance des métadonnées de la médiathèque.
type MediaRepository interface {
	Create(m *entity.MediaFile) error
	GetByID(id string) (*entity.MediaFile, error)
	List(folder string, limit, offset int) ([]*entity.MediaFile, error)
	Delete(id string) error
}
