package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.MediaRepository = (*MediaRepo)(nil)

// MediaRepo implémentation du port MediaRepository sur PostgreSQL.
// Les tags sont stockés en text[].
type MediaRepo struct {
	q Querier
}

// NewMediaRepository construit l'adaptateur. Passer le pool ou une tx.
func NewMediaRepository(q Querier) *MediaRepo {
	return &MediaRepo{q: q}
}

// Create persiste les métadonnées d'un fichier.
func (r *MediaRepo) Create(m *entity.MediaFile) error {
	query := `
		INSERT INTO media_files (id, filename, original_name, mime_type, size, url, alt, tags, folder, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Filename, m.OriginalName, m.MimeType, m.Size, m.URL, m.Alt, m.Tags, m.Folder, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert media (filename dupliqué): %w", err)
		}
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

// GetByID lit un fichier, nil si absent.
func (r *MediaRepo) GetByID(id string) (*entity.MediaFile, error) {
	query := `
		SELECT id, filename, original_name, mime_type, size, url, alt, tags, folder, created_at
		FROM media_files WHERE id = $1`
	var m entity.MediaFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.URL, &m.Alt, &m.Tags, &m.Folder, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return &m, nil
}

// List liste la médiathèque, filtrable par dossier, le plus récent d'abord.
func (r *MediaRepo) List(folder string, limit, offset int) ([]*entity.MediaFile, error) {
	query := `
		SELECT id, filename, original_name, mime_type, size, url, alt, tags, folder, created_at
		FROM media_files`
	args := []any{}
	if folder != "" {
		query += ` WHERE folder = $1`
		args = append(args, folder)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var files []*entity.MediaFile
	for rows.Next() {
		var m entity.MediaFile
		err := rows.Scan(&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.URL, &m.Alt, &m.Tags, &m.Folder, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		files = append(files, &m)
	}
	return files, rows.Err()
}

// Delete supprime les métadonnées d'un fichier.
func (r *MediaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM media_files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
