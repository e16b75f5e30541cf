package domain

// Brand is the full brand record embedded in the product detail.
type Brand struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
	Website     *string `json:"website"`
}

// BrandRef is the short brand object nested in listing items.
type BrandRef struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl"`
}
