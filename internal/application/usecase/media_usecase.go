package usecase

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

// FileStorage port de stockage binaire des fichiers (disque local, S3, ...).
type FileStorage interface {
	Save(folder, filename string, r io.Reader) (url string, err error)
	Remove(folder, filename string) error
}

// Types MIME acceptés à l'upload.
var allowedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/webp":    true,
	"image/gif":     true,
	"image/svg+xml": true,
	"video/mp4":     true,
}

// MediaUseCase upload, listing et suppression des fichiers de la médiathèque.
type MediaUseCase struct {
	repo    repository.MediaRepository
	storage FileStorage
}

// NewMediaUseCase construit le cas d'usage.
func NewMediaUseCase(repo repository.MediaRepository, storage FileStorage) *MediaUseCase {
	return &MediaUseCase{repo: repo, storage: storage}
}

// UploadInput entrée d'un upload multipart.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Folder       string
	Alt          string
	Tags         []string
	Body         io.Reader
}

// Upload enregistre le fichier sur le stockage puis ses métadonnées en base.
// Le nom sur disque est préfixé d'un UUID pour éviter les collisions.
func (uc *MediaUseCase) Upload(in UploadInput) (*dto.MediaResponse, error) {
	if !allowedMimeTypes[in.MimeType] {
		return nil, fmt.Errorf("%w: type de fichier non accepté: %s", domain.ErrInvalidInput, in.MimeType)
	}
	folder := in.Folder
	if folder == "" {
		folder = "general"
	}
	id := uuid.New().String()
	ext := filepath.Ext(in.OriginalName)
	filename := id + strings.ToLower(ext)
	url, err := uc.storage.Save(folder, filename, in.Body)
	if err != nil {
		return nil, err
	}
	m := &entity.MediaFile{
		ID:           id,
		Filename:     filename,
		OriginalName: in.OriginalName,
		MimeType:     in.MimeType,
		Size:         in.Size,
		URL:          url,
		Alt:          in.Alt,
		Tags:         in.Tags,
		Folder:       folder,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		// le binaire orphelin est retiré, l'erreur de persistance prime
		_ = uc.storage.Remove(folder, filename)
		return nil, err
	}
	return toMediaResponse(m), nil
}

// List liste la médiathèque, filtrable par dossier.
func (uc *MediaUseCase) List(folder string, page dto.PageRequest) (*dto.MediaListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(folder, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MediaResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMediaResponse(m))
	}
	return &dto.MediaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete supprime les métadonnées puis le binaire.
func (uc *MediaUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	return uc.storage.Remove(m.Folder, m.Filename)
}

func toMediaResponse(m *entity.MediaFile) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		URL:          m.URL,
		Alt:          m.Alt,
		Tags:         m.Tags,
		Folder:       m.Folder,
		CreatedAt:    m.CreatedAt,
	}
}
