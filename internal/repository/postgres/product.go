package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/pkg/database"
	apperrors "github.com/klueko/sheos/pkg/errors"
)

// ProductRepository implements repository.ProductRepository using PostgreSQL.
type ProductRepository struct {
	db     database.DBTX
	tracer *database.QueryTracer
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(db database.DBTX, tracer *database.QueryTracer) *ProductRepository {
	return &ProductRepository{db: db, tracer: tracer}
}

// GetBySlug retrieves an active product and its brand by slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (_ *domain.Product, err error) {
	query := `
		SELECT p.id, p.name, p.slug, p.description, p.short_description,
		       p.price::text, p.compare_at_price::text, p.sku,
		       p.is_vegan, p.has_steel_toe, p.meta_title, p.meta_description, p.created_at,
		       b.id, b.name, b.description, b.logo_url, b.website
		FROM products p
		INNER JOIN brands b ON b.id = p.brand_id
		WHERE p.slug = $1 AND p.is_active = true
		LIMIT 1`

	ctx, end := r.tracer.Trace(ctx, "GetProductBySlug", query)
	defer func() {
		if errors.Is(err, apperrors.ErrNotFound) {
			end(nil)
			return
		}
		end(err)
	}()

	var (
		p              domain.Product
		price          string
		compareAtPrice *string
	)
	err = r.db.QueryRow(ctx, query, slug).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.ShortDescription,
		&price,
		&compareAtPrice,
		&p.SKU,
		&p.IsVegan,
		&p.HasSteelToe,
		&p.MetaTitle,
		&p.MetaDescription,
		&p.CreatedAt,
		&p.Brand.ID,
		&p.Brand.Name,
		&p.Brand.Description,
		&p.Brand.LogoURL,
		&p.Brand.Website,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("Product", slug)
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}

	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse product price %q: %w", price, err)
	}
	if compareAtPrice != nil {
		d, err := decimal.NewFromString(*compareAtPrice)
		if err != nil {
			return nil, fmt.Errorf("parse compare-at price %q: %w", *compareAtPrice, err)
		}
		p.CompareAtPrice = &d
	}

	return &p, nil
}

// ListCategories returns the categories a product is linked to.
func (r *ProductRepository) ListCategories(ctx context.Context, productID int64) (_ []domain.Category, err error) {
	query := `
		SELECT c.id, c.name, c.slug
		FROM categories c
		INNER JOIN product_categories pc ON pc.category_id = c.id
		WHERE pc.product_id = $1
		ORDER BY c.id ASC`

	ctx, end := r.tracer.Trace(ctx, "ListProductCategories", query)
	defer func() { end(err) }()

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}

// ListActiveVariants returns the product's active variants ordered by size.
func (r *ProductRepository) ListActiveVariants(ctx context.Context, productID int64) (_ []domain.Variant, err error) {
	query := `
		SELECT id, product_id, size::text, color, sku, price::text, stock, is_active, created_at, updated_at
		FROM variants
		WHERE product_id = $1 AND is_active = true
		ORDER BY size ASC, id ASC`

	ctx, end := r.tracer.Trace(ctx, "ListActiveVariants", query)
	defer func() { end(err) }()

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	variants := make([]domain.Variant, 0)
	for rows.Next() {
		var (
			v           domain.Variant
			size, price string
		)
		if err := rows.Scan(
			&v.ID,
			&v.ProductID,
			&size,
			&v.Color,
			&v.SKU,
			&price,
			&v.Stock,
			&v.IsActive,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan variant row: %w", err)
		}
		if v.Size, err = decimal.NewFromString(size); err != nil {
			return nil, fmt.Errorf("parse variant size %q: %w", size, err)
		}
		if v.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("parse variant price %q: %w", price, err)
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate variant rows: %w", err)
	}

	return variants, nil
}

// ListImages returns all product images, primary first, then by sort order
// and id.
func (r *ProductRepository) ListImages(ctx context.Context, productID int64) (_ []domain.Image, err error) {
	query := `
		SELECT id, product_id, url, alt, sort_order, is_primary, created_at
		FROM images
		WHERE product_id = $1
		ORDER BY is_primary DESC, sort_order ASC, id ASC`

	ctx, end := r.tracer.Trace(ctx, "ListProductImages", query)
	defer func() { end(err) }()

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product images: %w", err)
	}
	defer rows.Close()

	images := make([]domain.Image, 0)
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(
			&img.ID,
			&img.ProductID,
			&img.URL,
			&img.Alt,
			&img.SortOrder,
			&img.IsPrimary,
			&img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}

	return images, nil
}
