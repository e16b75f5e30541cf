package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an active catalog product as served by the detail endpoint.
// Prices are exact decimals and marshal as JSON strings ("129.99").
type Product struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Slug             string           `json:"slug"`
	Description      *string          `json:"description"`
	ShortDescription *string          `json:"shortDescription"`
	Price            decimal.Decimal  `json:"price"`
	CompareAtPrice   *decimal.Decimal `json:"compareAtPrice"`
	SKU              *string          `json:"sku"`
	IsVegan          bool             `json:"isVegan"`
	HasSteelToe      bool             `json:"hasSteelToe"`
	MetaTitle        *string          `json:"metaTitle"`
	MetaDescription  *string          `json:"metaDescription"`
	CreatedAt        time.Time        `json:"createdAt"`
	Brand            Brand            `json:"brand"`
}

// ProductDetail is the full product document: the product with its brand,
// categories, active variants, images and the size/color facets derived from
// the variants.
type ProductDetail struct {
	Product
	Categories      []Category        `json:"categories"`
	Variants        []Variant         `json:"variants"`
	Images          []Image           `json:"images"`
	AvailableSizes  []decimal.Decimal `json:"availableSizes"`
	AvailableColors []string          `json:"availableColors"`
}

// NewProductDetail assembles the detail document and derives its facets.
// Nil slices are normalized to empty so they encode as [] rather than null.
func NewProductDetail(p Product, categories []Category, variants []Variant, images []Image) *ProductDetail {
	if categories == nil {
		categories = []Category{}
	}
	if variants == nil {
		variants = []Variant{}
	}
	if images == nil {
		images = []Image{}
	}
	return &ProductDetail{
		Product:         p,
		Categories:      categories,
		Variants:        variants,
		Images:          images,
		AvailableSizes:  AvailableSizes(variants),
		AvailableColors: AvailableColors(variants),
	}
}
