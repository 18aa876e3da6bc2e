package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implémentation du port CategoryRepository sur PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construit l'adaptateur. Passer le pool ou une tx.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste une catégorie.
func (r *CategoryRepo) Create(c *entity.Category) error {
	query := `
		INSERT INTO categories (id, parent_id, name, description, status, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ParentID, c.Name, c.Description, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID lit une catégorie, nil si absente.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, COALESCE(parent_id, ''), name, description, status, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.ParentID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update met à jour une catégorie.
func (r *CategoryRepo) Update(c *entity.Category) error {
	query := `
		UPDATE categories
		SET parent_id = NULLIF($2, ''), name = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ParentID, c.Name, c.Description, c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List renvoie toutes les catégories par nom.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `
		SELECT id, COALESCE(parent_id, ''), name, description, status, created_at, updated_at
		FROM categories ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		err := rows.Scan(&c.ID, &c.ParentID, &c.Name, &c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

// Delete supprime une catégorie. Les enfants remontent à la racine.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET parent_id = NULL WHERE parent_id = $1`, id)
	if err != nil {
		return fmt.Errorf("detach child categories: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
