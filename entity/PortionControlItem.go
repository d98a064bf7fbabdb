package entity

import (
	"gorm.io/gorm"
)

type PortionControlItem struct {
	gorm.Model
	PortionControlID uint           `json:"portionControlId"`
	PortionControl   PortionControl `json:"-"`

	IngredientProductID uint     `json:"ingredientProductId"`
	IngredientProduct   Product  `gorm:"foreignKey:IngredientProductID" json:"-"`
	IngredientVariantID *uint    `json:"ingredientVariantId,omitempty"`
	IngredientVariant   *Variant `gorm:"foreignKey:IngredientVariantID" json:"-"`

	ServingSize float64 `json:"servingSize"`
	Unit        string  `json:"unit"` // g, ml, pcs, scoop
}
