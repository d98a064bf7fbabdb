package services

import (
	"fmt"
	"testing"

	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// One private in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.ProductCategory{}, &entity.Product{}, &entity.Variant{}, &entity.VariantOption{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemAddOn{},
		&entity.Expense{}, &entity.ExpenseItem{},
		&entity.Event{},
		&entity.PortionControl{}, &entity.PortionControlItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func uintPtr(v uint) *uint { return &v }
