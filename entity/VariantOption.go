package entity

import (
	"gorm.io/gorm"
)

// Pure attribute pair, owned by its variant. SortOrder keeps the set ordered.
type VariantOption struct {
	gorm.Model
	VariantID uint    `json:"variantId"`
	Variant   Variant `json:"-"`

	Name      string `json:"name"`
	Value     string `json:"value"`
	SortOrder int    `json:"sortOrder"`
}
