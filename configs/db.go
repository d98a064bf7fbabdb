package configs

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() error {

	// Migrate the schema
	return db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{}, &entity.Product{}, &entity.Variant{}, &entity.VariantOption{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddOn{},
		&entity.Expense{}, &entity.ExpenseItem{},
		&entity.Event{},
		&entity.PortionControl{}, &entity.PortionControlItem{},
	)
}
