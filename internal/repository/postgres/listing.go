package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/klueko/sheos/internal/domain"
	"github.com/klueko/sheos/internal/repository"
	"github.com/klueko/sheos/pkg/database"
)

// listingSelect joins each product to its brand, at most one primary image
// (lowest sort_order, then lowest id) and the summed stock of all its
// variants. Format verbs: extra joins, WHERE clause, ORDER BY list, then the
// LIMIT and OFFSET placeholders.
const listingSelect = `
		SELECT p.id, p.name, p.slug, p.description, p.short_description,
		       p.price::text, p.compare_at_price::text, p.sku,
		       p.is_vegan, p.has_steel_toe, p.created_at,
		       b.id, b.name, b.logo_url,
		       pi.url, pi.alt,
		       COALESCE(SUM(v.stock), 0) AS stock
		FROM products p
		INNER JOIN brands b ON b.id = p.brand_id%s
		LEFT JOIN LATERAL (
			SELECT i.id, i.url, i.alt
			FROM images i
			WHERE i.product_id = p.id AND i.is_primary = true
			ORDER BY i.sort_order ASC, i.id ASC
			LIMIT 1
		) pi ON true
		LEFT JOIN variants v ON v.product_id = p.id
		%s
		GROUP BY p.id, b.id, pi.id, pi.url, pi.alt
		ORDER BY %s
		LIMIT %s OFFSET %s`

const countSelect = `
		SELECT COUNT(*)
		FROM products p
		INNER JOIN brands b ON b.id = p.brand_id%s
		%s`

// ListingRepository implements repository.ListingRepository using PostgreSQL.
type ListingRepository struct {
	db     database.DBTX
	tracer *database.QueryTracer
}

var _ repository.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a PostgreSQL-backed listing repository.
func NewListingRepository(db database.DBTX, tracer *database.QueryTracer) *ListingRepository {
	return &ListingRepository{db: db, tracer: tracer}
}

// ListCatalog returns one page of the filtered catalog listing.
func (r *ListingRepository) ListCatalog(ctx context.Context, filter repository.CatalogFilter, sort repository.Sort, page repository.Page) (rows []domain.ListingRow, err error) {
	p := catalogPredicates(filter)
	limit, offset := p.arg(page.Limit), p.arg(page.Offset)
	query := fmt.Sprintf(listingSelect, p.joins(), p.whereClause(), orderBy(sort), limit, offset)

	ctx, end := r.tracer.Trace(ctx, "ListCatalog", query)
	defer func() { end(err) }()

	rows, err = r.queryListing(ctx, query, p.args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return rows, nil
}

// CountCatalog counts the products matching filter. It skips the image and
// variant joins, which never change the product set.
func (r *ListingRepository) CountCatalog(ctx context.Context, filter repository.CatalogFilter) (total int, err error) {
	p := catalogPredicates(filter)
	query := fmt.Sprintf(countSelect, p.joins(), p.whereClause())

	ctx, end := r.tracer.Trace(ctx, "CountCatalog", query)
	defer func() { end(err) }()

	var n int64
	if err = r.db.QueryRow(ctx, query, p.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count catalog: %w", err)
	}
	return int(n), nil
}

// ListLegacy returns one page of every product, active or not, newest first.
func (r *ListingRepository) ListLegacy(ctx context.Context, page repository.Page) (rows []domain.ListingRow, err error) {
	query := fmt.Sprintf(listingSelect, "", "", orderBy(repository.DefaultSort), "$1", "$2")

	ctx, end := r.tracer.Trace(ctx, "ListLegacy", query)
	defer func() { end(err) }()

	rows, err = r.queryListing(ctx, query, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("list legacy: %w", err)
	}
	return rows, nil
}

func (r *ListingRepository) queryListing(ctx context.Context, query string, args ...any) ([]domain.ListingRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ListingRow, 0)
	for rows.Next() {
		row, err := scanListingRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate listing rows: %w", err)
	}
	return out, nil
}

func scanListingRow(rows pgx.Rows) (domain.ListingRow, error) {
	var r domain.ListingRow
	if err := rows.Scan(
		&r.ID,
		&r.Name,
		&r.Slug,
		&r.Description,
		&r.ShortDescription,
		&r.Price,
		&r.CompareAtPrice,
		&r.SKU,
		&r.IsVegan,
		&r.HasSteelToe,
		&r.CreatedAt,
		&r.BrandID,
		&r.BrandName,
		&r.BrandLogoURL,
		&r.ImageURL,
		&r.ImageAlt,
		&r.Stock,
	); err != nil {
		return r, fmt.Errorf("scan listing row: %w", err)
	}
	return r, nil
}
