package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, description, price, stock, low_stock, track_stock, category_id, image_url, created_at, updated_at`

// ProductRepo implémentation du port ProductRepository sur PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un produit et ses variantes.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Description, product.Price,
		product.Stock, product.LowStock, product.TrackStock, product.CategoryID,
		product.ImageURL, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	if len(product.Variants) > 0 {
		return r.insertVariants(product.ID, product.Variants)
	}
	return nil
}

// GetByID lit un produit et ses variantes, nil si absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil || p == nil {
		return nil, err
	}
	variants, err := r.listVariants(p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return p, nil
}

// GetBySKU lit un produit par SKU, nil si absent. Les variantes ne sont pas chargées.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

// Update met à jour un produit. Le stock ne se modifie pas ici mais via
// UpdateStock, alimenté par les mouvements.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, low_stock = $5, track_stock = $6,
		    category_id = $7, image_url = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price, product.LowStock,
		product.TrackStock, product.CategoryID, product.ImageURL, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock pose le stock de base du produit.
func (r *ProductRepo) UpdateStock(productID string, stock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`,
		productID, stock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List liste les produits avec pagination, filtrable par catégorie.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if filter.CategoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, filter.CategoryID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if filter.IncludeVariants {
		for _, p := range products {
			variants, err := r.listVariants(p.ID)
			if err != nil {
				return nil, err
			}
			p.Variants = variants
		}
	}
	return products, nil
}

// Delete supprime un produit (les variantes suivent par ON DELETE CASCADE).
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetVariant lit une variante, nil si absente.
func (r *ProductRepo) GetVariant(variantID string) (*entity.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, price, stock, position, created_at, updated_at
		FROM product_variants WHERE id = $1`
	var v entity.ProductVariant
	err := r.q.QueryRow(context.Background(), query, variantID).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock, &v.Position, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return &v, nil
}

// UpdateVariantStock pose le stock d'une variante.
func (r *ProductRepo) UpdateVariantStock(variantID string, stock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE product_variants SET stock = $2, updated_at = now() WHERE id = $1`,
		variantID, stock,
	)
	if err != nil {
		return fmt.Errorf("update variant stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReplaceVariants remplace en bloc les variantes d'un produit.
func (r *ProductRepo) ReplaceVariants(productID string, variants []entity.ProductVariant) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM product_variants WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete variants: %w", err)
	}
	return r.insertVariants(productID, variants)
}

func (r *ProductRepo) insertVariants(productID string, variants []entity.ProductVariant) error {
	query := `
		INSERT INTO product_variants (id, product_id, name, sku, price, stock, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, v := range variants {
		_, err := r.q.Exec(context.Background(), query,
			v.ID, productID, v.Name, v.SKU, v.Price, v.Stock, v.Position, v.CreatedAt, v.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert variant: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) listVariants(productID string) ([]entity.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, sku, price, stock, position, created_at, updated_at
		FROM product_variants WHERE product_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var variants []entity.ProductVariant
	for rows.Next() {
		var v entity.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.SKU, &v.Price, &v.Stock, &v.Position, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.LowStock,
		&p.TrackStock, &p.CategoryID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
