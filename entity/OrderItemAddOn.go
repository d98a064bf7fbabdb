package entity

import (
	"gorm.io/gorm"
)

// An add-on's cost contributes price × quantity × parent item quantity.
type OrderItemAddOn struct {
	gorm.Model
	OrderItemID uint      `json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	Name     string `json:"name"`
	Value    string `json:"value"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}
