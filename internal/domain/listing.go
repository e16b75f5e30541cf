package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/klueko/sheos/pkg/price"
	"github.com/klueko/sheos/pkg/slug"
)

// ListingRow is one flat row of the paginated aggregate join: a product with
// its brand, at most one primary image and the summed stock of its variants.
// The legacy listing emits it as-is, so the JSON tags are part of that
// contract. Prices are the numeric column's text form.
type ListingRow struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"shortDescription"`
	Price            string    `json:"price"`
	CompareAtPrice   *string   `json:"compareAtPrice"`
	SKU              *string   `json:"sku"`
	IsVegan          bool      `json:"isVegan"`
	HasSteelToe      bool      `json:"hasSteelToe"`
	CreatedAt        time.Time `json:"createdAt"`
	BrandID          int64     `json:"brandId"`
	BrandName        string    `json:"brandName"`
	BrandLogoURL     *string   `json:"brandLogoUrl"`
	ImageURL         *string   `json:"imageUrl"`
	ImageAlt         *string   `json:"imageAlt"`
	Stock            *int64    `json:"stock"`
}

// ListItem is a listing row reshaped into the nested catalog document.
type ListItem struct {
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
	CreatedAt        time.Time        `json:"createdAt"`
	Brand            BrandRef         `json:"brand"`
	Image            *ImageRef        `json:"image"`
	Stock            int64            `json:"stock"`
}

// LegacyProduct is the mapped legacy listing item. The id is a string and
// prices are plain numbers, as the external integration expects.
type LegacyProduct struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"shortDescription"`
	Price            float64   `json:"price"`
	CompareAtPrice   *float64  `json:"compareAtPrice"`
	SKU              *string   `json:"sku"`
	IsVegan          bool      `json:"isVegan"`
	HasSteelToe      bool      `json:"hasSteelToe"`
	CreatedAt        time.Time `json:"createdAt"`
	Brand            BrandRef  `json:"brand"`
	Image            *ImageRef `json:"image"`
	Stock            int64     `json:"stock"`
}

func (r ListingRow) brand() BrandRef {
	return BrandRef{ID: r.BrandID, Name: r.BrandName, LogoURL: r.BrandLogoURL}
}

// image returns nil when the row has no primary image. An empty alt falls
// back to the product name.
func (r ListingRow) image() *ImageRef {
	if r.ImageURL == nil || *r.ImageURL == "" {
		return nil
	}
	alt := r.Name
	if r.ImageAlt != nil && *r.ImageAlt != "" {
		alt = *r.ImageAlt
	}
	return &ImageRef{URL: *r.ImageURL, Alt: alt}
}

func (r ListingRow) stock() int64 {
	if r.Stock == nil {
		return 0
	}
	return *r.Stock
}

// ToListItem reshapes the row into the nested catalog document. Prices that
// fail to parse as decimals become zero.
func (r ListingRow) ToListItem() ListItem {
	item := ListItem{
		ID:               r.ID,
		Name:             r.Name,
		Slug:             r.Slug,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            parseDecimal(r.Price),
		SKU:              r.SKU,
		IsVegan:          r.IsVegan,
		HasSteelToe:      r.HasSteelToe,
		CreatedAt:        r.CreatedAt,
		Brand:            r.brand(),
		Image:            r.image(),
		Stock:            r.stock(),
	}
	if r.CompareAtPrice != nil {
		d := parseDecimal(*r.CompareAtPrice)
		item.CompareAtPrice = &d
	}
	return item
}

// ToLegacyProduct reshapes the row into the mapped legacy item. Rows imported
// without a slug get one derived from the name.
func (r ListingRow) ToLegacyProduct() LegacyProduct {
	s := r.Slug
	if s == "" {
		s = slug.Generate(r.Name)
	}
	p := LegacyProduct{
		ID:               strconv.FormatInt(r.ID, 10),
		Name:             r.Name,
		Slug:             s,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            price.Normalize(r.Price),
		SKU:              r.SKU,
		IsVegan:          r.IsVegan,
		HasSteelToe:      r.HasSteelToe,
		CreatedAt:        r.CreatedAt,
		Brand:            r.brand(),
		Image:            r.image(),
		Stock:            r.stock(),
	}
	if r.CompareAtPrice != nil {
		v := price.Normalize(*r.CompareAtPrice)
		p.CompareAtPrice = &v
	}
	return p
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
