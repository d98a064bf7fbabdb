package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint     `json:"productId"`
	Product   Product  `json:"-"` // preload only when the product name is needed
	VariantID *uint    `json:"variantId,omitempty"`
	Variant   *Variant `json:"-"`

	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // unit price snapshot at order time
	Subtotal int64 `json:"subtotal"`

	AddOns []OrderItemAddOn `json:"addOns"`
}
