package domain

import "time"

// Image is a product image. At most one image per product is expected to be
// primary.
type Image struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	URL       string    `json:"url"`
	Alt       *string   `json:"alt"`
	SortOrder int       `json:"sortOrder"`
	IsPrimary bool      `json:"isPrimary"`
	CreatedAt time.Time `json:"createdAt"`
}

// ImageRef is the {url, alt} object nested in listing items.
type ImageRef struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}
