package repository

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type ExpenseRepository struct {
	DB *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(e *entity.Expense) error {
	return r.DB.Omit("Items").Create(e).Error
}

func (r *ExpenseRepository) Update(e *entity.Expense) error {
	return r.DB.Omit("Items").Save(e).Error
}

// Delete removes the row for good; a soft-deleted expense would keep its
// transaction_date locked under the unique index.
func (r *ExpenseRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Expense{}, id).Error
}

func (r *ExpenseRepository) Get(id uint) (*entity.Expense, error) {
	var e entity.Expense
	if err := r.DB.Preload("Items").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// FindByDate probes the per-day uniqueness constraint. Returns
// gorm.ErrRecordNotFound when the date is free.
func (r *ExpenseRepository) FindByDate(date string) (*entity.Expense, error) {
	var e entity.Expense
	if err := r.DB.Where("transaction_date = ?", date).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// List by ISO-date range; dates compare lexicographically.
func (r *ExpenseRepository) List(from, to string) ([]entity.Expense, error) {
	q := r.DB.Preload("Items")
	if from != "" {
		q = q.Where("transaction_date >= ?", from)
	}
	if to != "" {
		q = q.Where("transaction_date <= ?", to)
	}
	var out []entity.Expense
	err := q.Order("transaction_date DESC").Find(&out).Error
	return out, err
}

func (r *ExpenseRepository) CreateItem(it *entity.ExpenseItem) error {
	return r.DB.Create(it).Error
}

func (r *ExpenseRepository) DeleteChildren(expenseID uint) error {
	return r.DB.Unscoped().Where("expense_id = ?", expenseID).Delete(&entity.ExpenseItem{}).Error
}

func (r *ExpenseRepository) SumByDateRange(from, to string) (int64, error) {
	var row struct{ Total int64 }
	q := r.DB.Model(&entity.Expense{}).Select("COALESCE(SUM(total_expense), 0) AS total")
	if from != "" {
		q = q.Where("transaction_date >= ?", from)
	}
	if to != "" {
		q = q.Where("transaction_date <= ?", to)
	}
	err := q.Scan(&row).Error
	return row.Total, err
}
