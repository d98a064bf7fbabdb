package repository

import (
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Omit("Items").Create(o).Error
}

func (r *OrderRepository) Update(o *entity.Order) error {
	return r.DB.Omit("Items").Save(o).Error
}

func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Order{}, id).Error
}

func (r *OrderRepository) Get(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items.AddOns").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status string
	Search string // matched against customer_name, case-insensitive
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		q = q.Where("customer_name LIKE ?", "%"+f.Search+"%")
	}
	if f.From != nil {
		q = q.Where("order_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("order_date <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Order("created_at DESC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

// Queue: pending/processing only, oldest first.
func (r *OrderRepository) Queue() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items.AddOns").
		Where("status IN ?", []string{"pending", "processing"}).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(id uint, status string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	return res.RowsAffected, res.Error
}

// ---------------- Items & add-ons ----------------

func (r *OrderRepository) CreateItem(it *entity.OrderItem) error {
	return r.DB.Omit("AddOns").Create(it).Error
}

func (r *OrderRepository) CreateAddOn(a *entity.OrderItemAddOn) error {
	return r.DB.Create(a).Error
}

// DeleteChildren removes every item and add-on of an order (full replace).
func (r *OrderRepository) DeleteChildren(orderID uint) error {
	var itemIDs []uint
	if err := r.DB.Model(&entity.OrderItem{}).
		Where("order_id = ?", orderID).Pluck("id", &itemIDs).Error; err != nil {
		return err
	}
	if len(itemIDs) > 0 {
		if err := r.DB.Unscoped().
			Where("order_item_id IN ?", itemIDs).
			Delete(&entity.OrderItemAddOn{}).Error; err != nil {
			return err
		}
	}
	return r.DB.Unscoped().Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error
}
