package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerName  string    `json:"customerName"`
	Status        string    `gorm:"not null;default:pending;index" json:"status"`
	OrderDate     time.Time `json:"orderDate"`
	OrderType     string    `gorm:"not null;default:pickup" json:"orderType"` // pickup | delivery | dine-in
	DeliveryFee   int64     `json:"deliveryFee"`
	PaymentMethod string    `json:"paymentMethod"`
	Notes         string    `json:"notes"`

	// Derived; always recomputed from the submitted items before a write.
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`

	// preload only on detail
	Items []OrderItem `json:"items"`
}
