package repository

import (
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Cancelled and refunded orders never count toward sales.
var excludedStatuses = []string{"cancelled", "refunded"}

func (r *ReportRepository) salesScope(from, to time.Time) *gorm.DB {
	return r.DB.Model(&entity.Order{}).
		Where("status NOT IN ?", excludedStatuses).
		Where("order_date >= ? AND order_date <= ?", from, to)
}

func (r *ReportRepository) GrossSales(from, to time.Time) (int64, int64, error) {
	var row struct {
		Gross int64
		Count int64
	}
	err := r.salesScope(from, to).
		Select("COALESCE(SUM(total), 0) AS gross, COUNT(*) AS count").
		Scan(&row).Error
	return row.Gross, row.Count, err
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

func (r *ReportRepository) CountByStatus(from, to time.Time) ([]StatusCount, error) {
	var out []StatusCount
	err := r.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) AS count").
		Where("order_date >= ? AND order_date <= ?", from, to).
		Group("status").
		Scan(&out).Error
	return out, err
}

type BucketSum struct {
	Key   string `json:"key"`
	Gross int64  `json:"gross"`
	Count int64  `json:"count"`
}

func (r *ReportRepository) SalesByOrderType(from, to time.Time) ([]BucketSum, error) {
	var out []BucketSum
	err := r.salesScope(from, to).
		Select("order_type AS key, COALESCE(SUM(total), 0) AS gross, COUNT(*) AS count").
		Group("order_type").
		Scan(&out).Error
	return out, err
}

func (r *ReportRepository) SalesByPaymentMethod(from, to time.Time) ([]BucketSum, error) {
	var out []BucketSum
	err := r.salesScope(from, to).
		Select("payment_method AS key, COALESCE(SUM(total), 0) AS gross, COUNT(*) AS count").
		Group("payment_method").
		Scan(&out).Error
	return out, err
}

type TopProduct struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Gross     int64  `json:"gross"`
}

func (r *ReportRepository) TopProducts(from, to time.Time, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []TopProduct
	err := r.DB.Table("order_items AS oi").
		Select("oi.product_id, p.name, SUM(oi.quantity) AS quantity, SUM(oi.subtotal) AS gross").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.status NOT IN ?", excludedStatuses).
		Where("o.order_date >= ? AND o.order_date <= ?", from, to).
		Where("oi.deleted_at IS NULL AND o.deleted_at IS NULL").
		Group("oi.product_id, p.name").
		Order("quantity DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
