package configs

import (
	"log"

	"github.com/SuperEjay/pos-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// First-run admin from env; skipped when the account already exists.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// Seed default product categories.
func SeedLookups() error {
	db := DB()

	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Drinks"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Desserts"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Snacks"})
	db.FirstOrCreate(&entity.ProductCategory{}, entity.ProductCategory{CategoryName: "Ingredients"})

	log.Println("lookup tables seeded")
	return nil
}
