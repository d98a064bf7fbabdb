package entity

import (
	"gorm.io/gorm"
)

type Variant struct {
	gorm.Model
	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	Name  string `gorm:"not null" json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
	SKU   string `json:"sku"`

	Options []VariantOption `json:"options"`
}
