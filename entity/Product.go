package entity

import (
	"gorm.io/gorm"
)

// Prices are stored in minor units (satang/cents) to keep totals exact.
type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
	ImageURL    string `json:"imageUrl"`

	CategoryID uint            `json:"categoryId"`
	Category   ProductCategory `json:"-"` // preload only on detail

	// preloaded on detail, full-replaced on edit
	Variants []Variant `json:"variants"`

	OrderItems []OrderItem `json:"-"`
}
