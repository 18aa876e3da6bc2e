package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.CollectionRepository = (*CollectionRepo)(nil)

// CollectionRepo implémentation du port CollectionRepository sur PostgreSQL.
type CollectionRepo struct {
	q Querier
}

// NewCollectionRepository construit l'adaptateur. Passer le pool ou une tx.
func NewCollectionRepository(q Querier) *CollectionRepo {
	return &CollectionRepo{q: q}
}

// Create persiste une collection.
func (r *CollectionRepo) Create(c *entity.Collection) error {
	query := `
		INSERT INTO collections (id, name, description, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.ImageURL, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

// GetByID lit une collection, nil si absente.
func (r *CollectionRepo) GetByID(id string) (*entity.Collection, error) {
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM collections WHERE id = $1`
	var c entity.Collection
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get collection: %w", err)
	}
	return &c, nil
}

// Update met à jour une collection.
func (r *CollectionRepo) Update(c *entity.Collection) error {
	query := `
		UPDATE collections
		SET name = $2, description = $3, image_url = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Description, c.ImageURL, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update collection: %w", err)
	}
	return nil
}

// List renvoie toutes les collections par nom.
func (r *CollectionRepo) List() ([]*entity.Collection, error) {
	query := `
		SELECT id, name, description, image_url, is_active, created_at, updated_at
		FROM collections ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var collections []*entity.Collection
	for rows.Next() {
		var c entity.Collection
		err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, &c)
	}
	return collections, rows.Err()
}

// Delete supprime une collection.
func (r *CollectionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}
