package entity

import (
	"gorm.io/gorm"
)

// A portion-control recipe for a product (optionally one specific variant).
type PortionControl struct {
	gorm.Model
	ProductID uint     `json:"productId"`
	Product   Product  `json:"-"`
	VariantID *uint    `json:"variantId,omitempty"`
	Variant   *Variant `json:"-"`

	Name string `gorm:"not null" json:"name"`

	Items []PortionControlItem `json:"items"`
}
