package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/klueko/sheos/pkg/errors"
)

var productColumns = []string{
	"id", "name", "slug", "description", "short_description",
	"price", "compare_at_price", "sku", "is_vegan", "has_steel_toe",
	"meta_title", "meta_description", "created_at",
	"brand_id", "brand_name", "brand_description", "brand_logo_url", "brand_website",
}

func productRow(compareAt *string) []any {
	return []any{
		int64(7), "Trail Runner", "trail-runner", strPtr("All terrain"), strPtr("Grippy"),
		"129.99", compareAt, strPtr("TR-1"), true, false,
		strPtr("Trail Runner | Shop"), nil, now,
		int64(3), "Acme", nil, strPtr("https://cdn.example/acme.png"), strPtr("https://acme.example"),
	}
}

func TestProductRepository_GetBySlug_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`SELECT .+ FROM products p INNER JOIN brands b ON b.id = p.brand_id WHERE p\.slug = \$1 AND p\.is_active = true LIMIT 1`).
		WithArgs("trail-runner").
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(productRow(strPtr("149.00"))...))

	p, err := repo.GetBySlug(context.Background(), "trail-runner")
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "129.99", p.Price.String())
	require.NotNil(t, p.CompareAtPrice)
	assert.Equal(t, "149", p.CompareAtPrice.String())
	assert.Equal(t, int64(3), p.Brand.ID)
	assert.Equal(t, "Acme", p.Brand.Name)
	assert.Nil(t, p.Brand.Description)
	assert.Equal(t, "https://acme.example", *p.Brand.Website)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetBySlug_NullCompareAtPrice(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`FROM products p`).
		WithArgs("trail-runner").
		WillReturnRows(pgxmock.NewRows(productColumns).AddRow(productRow(nil)...))

	p, err := repo.GetBySlug(context.Background(), "trail-runner")
	require.NoError(t, err)
	assert.Nil(t, p.CompareAtPrice)
}

func TestProductRepository_GetBySlug_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`FROM products p`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	p, err := repo.GetBySlug(context.Background(), "missing")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Product not found", appErr.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetBySlug_DBError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`FROM products p`).
		WithArgs("x").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetBySlug(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, err.Error(), "get product by slug")
}

func TestProductRepository_ListCategories(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`SELECT c\.id, c\.name, c\.slug FROM categories c INNER JOIN product_categories pc ON pc\.category_id = c\.id WHERE pc\.product_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(int64(1), "Running", "running").
			AddRow(int64(4), "Outdoor", "outdoor"))

	cats, err := repo.ListCategories(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "running", cats[0].Slug)
	assert.Equal(t, int64(4), cats[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListActiveVariants(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	cols := []string{"id", "product_id", "size", "color", "sku", "price", "stock", "is_active", "created_at", "updated_at"}
	mock.ExpectQuery(`FROM variants WHERE product_id = \$1 AND is_active = true ORDER BY size ASC, id ASC`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(10), int64(7), "40.0", strPtr("black"), strPtr("TR-40"), "129.99", 5, true, now, now).
			AddRow(int64(11), int64(7), "42.5", nil, strPtr("TR-42"), "129.99", 0, true, now, now))

	variants, err := repo.ListActiveVariants(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, variants, 2)
	assert.Equal(t, "40", variants[0].Size.String())
	assert.Equal(t, "black", *variants[0].Color)
	assert.Equal(t, 5, variants[0].Stock)
	assert.Equal(t, "42.5", variants[1].Size.String())
	assert.Nil(t, variants[1].Color)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListActiveVariants_Error(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`FROM variants`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListActiveVariants(context.Background(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list variants")
}

func TestProductRepository_ListImages(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	cols := []string{"id", "product_id", "url", "alt", "sort_order", "is_primary", "created_at"}
	mock.ExpectQuery(`FROM images WHERE product_id = \$1 ORDER BY is_primary DESC, sort_order ASC, id ASC`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(2), int64(7), "https://cdn.example/front.jpg", strPtr("Front"), 0, true, now).
			AddRow(int64(1), int64(7), "https://cdn.example/side.jpg", nil, 1, false, now))

	images, err := repo.ListImages(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, "Front", *images[0].Alt)
	assert.Nil(t, images[1].Alt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListImages_Empty(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock, nil)

	mock.ExpectQuery(`FROM images`).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "product_id", "url", "alt", "sort_order", "is_primary", "created_at"}))

	images, err := repo.ListImages(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, images)
	assert.Empty(t, images)
}
