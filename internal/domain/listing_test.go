package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func sampleRow() ListingRow {
	return ListingRow{
		ID:             7,
		Name:           "Trail Runner",
		Slug:           "trail-runner",
		Price:          "129.99",
		CompareAtPrice: strPtr("149.00"),
		SKU:            strPtr("TR-1"),
		IsVegan:        true,
		CreatedAt:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		BrandID:        3,
		BrandName:      "Acme",
		BrandLogoURL:   strPtr("https://cdn.example/acme.png"),
		ImageURL:       strPtr("https://cdn.example/tr.jpg"),
		ImageAlt:       strPtr("Side view"),
		Stock:          int64Ptr(8),
	}
}

func TestToListItem_NestsBrandAndImage(t *testing.T) {
	item := sampleRow().ToListItem()

	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "129.99", item.Price.String())
	require.NotNil(t, item.CompareAtPrice)
	assert.Equal(t, "149", item.CompareAtPrice.String())
	assert.Equal(t, BrandRef{ID: 3, Name: "Acme", LogoURL: strPtr("https://cdn.example/acme.png")}, item.Brand)
	assert.Equal(t, &ImageRef{URL: "https://cdn.example/tr.jpg", Alt: "Side view"}, item.Image)
	assert.Equal(t, int64(8), item.Stock)
}

func TestToListItem_AltFallsBackToName(t *testing.T) {
	for _, alt := range []*string{nil, strPtr("")} {
		row := sampleRow()
		row.ImageAlt = alt

		item := row.ToListItem()

		require.NotNil(t, item.Image)
		assert.Equal(t, "Trail Runner", item.Image.Alt)
	}
}

func TestToListItem_NoImageIsNull(t *testing.T) {
	row := sampleRow()
	row.ImageURL = nil
	row.ImageAlt = nil

	b, err := json.Marshal(row.ToListItem())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Contains(t, out, "image")
	assert.Nil(t, out["image"])
}

func TestToListItem_NullStockIsZero(t *testing.T) {
	row := sampleRow()
	row.Stock = nil

	assert.Equal(t, int64(0), row.ToListItem().Stock)
}

func TestToListItem_JSONShape(t *testing.T) {
	b, err := json.Marshal(sampleRow().ToListItem())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, "129.99", out["price"])
	assert.Equal(t, map[string]any{"id": float64(3), "name": "Acme", "logoUrl": "https://cdn.example/acme.png"}, out["brand"])
	assert.Equal(t, float64(8), out["stock"])
	assert.Equal(t, true, out["isVegan"])
	assert.Equal(t, false, out["hasSteelToe"])
}

func TestToLegacyProduct(t *testing.T) {
	row := sampleRow()
	row.CompareAtPrice = nil

	p := row.ToLegacyProduct()

	assert.Equal(t, "7", p.ID)
	assert.Equal(t, 129.99, p.Price)
	assert.Nil(t, p.CompareAtPrice)
	assert.Equal(t, "Acme", p.Brand.Name)
	require.NotNil(t, p.Image)
	assert.Equal(t, "Side view", p.Image.Alt)
	assert.Equal(t, int64(8), p.Stock)
}

func TestListingRow_RawJSONKeys(t *testing.T) {
	b, err := json.Marshal(sampleRow())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	for _, key := range []string{"brandId", "brandName", "brandLogoUrl", "imageUrl", "imageAlt", "stock", "shortDescription", "compareAtPrice"} {
		assert.Contains(t, out, key)
	}
	assert.Equal(t, "129.99", out["price"])
}

func TestToLegacyProduct_MissingSlugDerivedFromName(t *testing.T) {
	row := sampleRow()
	row.Slug = ""
	row.Name = "Café Runner 2"

	assert.Equal(t, "cafe-runner-2", row.ToLegacyProduct().Slug)
}
