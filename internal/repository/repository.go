package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/klueko/sheos/internal/domain"
)

// CatalogFilter holds the optional catalog listing predicates. A nil pointer
// or false flag means the predicate is not applied.
type CatalogFilter struct {
	Search     *string
	BrandID    *int64
	CategoryID *int64
	Vegan      bool
	SteelToe   bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// SortField is a catalog listing sort key.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortPrice     SortField = "price"
	SortName      SortField = "name"
)

// Sort selects the listing order.
type Sort struct {
	Field     SortField
	Ascending bool
}

// DefaultSort is newest first.
var DefaultSort = Sort{Field: SortCreatedAt}

// ParseSort maps the sort and order query values to a Sort. Only "price" and
// "name" are selectable and only "asc" (any case) selects ascending order;
// everything else is newest first.
func ParseSort(field, order string) Sort {
	asc := strings.EqualFold(strings.TrimSpace(order), "asc")
	switch SortField(field) {
	case SortPrice:
		return Sort{Field: SortPrice, Ascending: asc}
	case SortName:
		return Sort{Field: SortName, Ascending: asc}
	default:
		return DefaultSort
	}
}

// Page is a limit/offset window.
type Page struct {
	Limit  int
	Offset int
}

// ListingRepository reads the paginated aggregate listing.
type ListingRepository interface {
	// ListCatalog returns one page of active products matching filter.
	ListCatalog(ctx context.Context, filter CatalogFilter, sort Sort, page Page) ([]domain.ListingRow, error)

	// CountCatalog returns the number of active products matching filter.
	CountCatalog(ctx context.Context, filter CatalogFilter) (int, error)

	// ListLegacy returns one page of all products, newest first.
	ListLegacy(ctx context.Context, page Page) ([]domain.ListingRow, error)
}

// ProductRepository reads a single product and its child collections.
type ProductRepository interface {
	// GetBySlug returns the active product with its brand, or a not-found
	// AppError.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// ListCategories returns the categories linked to the product.
	ListCategories(ctx context.Context, productID int64) ([]domain.Category, error)

	// ListActiveVariants returns the product's active variants by size.
	ListActiveVariants(ctx context.Context, productID int64) ([]domain.Variant, error)

	// ListImages returns the product's images, primary first.
	ListImages(ctx context.Context, productID int64) ([]domain.Image, error)
}
