package entity

import (
	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	CategoryName string `gorm:"uniqueIndex;not null" json:"categoryName"`

	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
