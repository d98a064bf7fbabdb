package entity

import (
	"time"

	"gorm.io/gorm"
)

// Portfolio content for the public site; unrelated to ordering.
type Event struct {
	gorm.Model
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"uniqueIndex;not null" json:"slug"`
	Location  string    `json:"location"`
	Pax       int       `json:"pax"`
	EventDate time.Time `json:"eventDate"`
	Category  string    `json:"category"`

	Images             []string `gorm:"serializer:json" json:"images"`
	FeaturedImageIndex int      `json:"featuredImageIndex"`
	Flavors            []string `gorm:"serializer:json" json:"flavors"`
}
