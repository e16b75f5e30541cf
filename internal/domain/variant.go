package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a purchasable size/color combination of a product.
type Variant struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Size      decimal.Decimal `json:"size"`
	Color     *string         `json:"color"`
	SKU       *string         `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
