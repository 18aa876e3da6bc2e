package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.HomeSectionRepository = (*HomeSectionRepo)(nil)

const sectionColumns = `id, title, description, type, content, is_visible, sort_order, created_at, updated_at`

// HomeSectionRepo implémentation du port HomeSectionRepository sur PostgreSQL.
// Content est une colonne jsonb opaque : le schéma du blob est l'affaire du domaine.
type HomeSectionRepo struct {
	q Querier
}

// NewHomeSectionRepository construit l'adaptateur. Passer le pool ou une tx.
func NewHomeSectionRepository(q Querier) *HomeSectionRepo {
	return &HomeSectionRepo{q: q}
}

// Create persiste une section.
func (r *HomeSectionRepo) Create(s *entity.HomeSection) error {
	query := `
		INSERT INTO home_sections (` + sectionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Title, s.Description, s.Type, s.Content, s.IsVisible, s.Order, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert home section: %w", err)
	}
	return nil
}

// GetByID lit une section, nil si absente.
func (r *HomeSectionRepo) GetByID(id string) (*entity.HomeSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM home_sections WHERE id = $1`
	var s entity.HomeSection
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Title, &s.Description, &s.Type, &s.Content, &s.IsVisible, &s.Order, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home section: %w", err)
	}
	return &s, nil
}

// Update met à jour une section (titre, description, contenu, visibilité).
func (r *HomeSectionRepo) Update(s *entity.HomeSection) error {
	query := `
		UPDATE home_sections
		SET title = $2, description = $3, content = $4, is_visible = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Title, s.Description, s.Content, s.IsVisible, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update home section: %w", err)
	}
	return nil
}

// List renvoie toutes les sections triées par ordre croissant.
func (r *HomeSectionRepo) List() ([]*entity.HomeSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM home_sections ORDER BY sort_order`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list home sections: %w", err)
	}
	defer rows.Close()

	var sections []*entity.HomeSection
	for rows.Next() {
		var s entity.HomeSection
		err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Type, &s.Content, &s.IsVisible, &s.Order, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan home section: %w", err)
		}
		sections = append(sections, &s)
	}
	return sections, rows.Err()
}

// Reorder écrit tous les ordres d'un coup.
func (r *HomeSectionRepo) Reorder(orders []repository.SectionOrder) error {
	for _, o := range orders {
		_, err := r.q.Exec(context.Background(),
			`UPDATE home_sections SET sort_order = $2, updated_at = now() WHERE id = $1`,
			o.ID, o.Order,
		)
		if err != nil {
			return fmt.Errorf("reorder home sections: %w", err)
		}
	}
	return nil
}

// Delete supprime une section.
func (r *HomeSectionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM home_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home section: %w", err)
	}
	return nil
}

// MaxOrder renvoie l'ordre le plus élevé, 0 sans section.
func (r *HomeSectionRepo) MaxOrder() (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sort_order), 0) FROM home_sections`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max section order: %w", err)
	}
	return max, nil
}
