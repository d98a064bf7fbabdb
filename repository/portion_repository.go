package repository

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type PortionRepository struct {
	DB *gorm.DB
}

func NewPortionRepository(db *gorm.DB) *PortionRepository {
	return &PortionRepository{DB: db}
}

func (r *PortionRepository) Create(p *entity.PortionControl) error {
	return r.DB.Omit("Items").Create(p).Error
}

func (r *PortionRepository) Update(p *entity.PortionControl) error {
	return r.DB.Omit("Items").Save(p).Error
}

func (r *PortionRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.PortionControl{}, id).Error
}

func (r *PortionRepository) Get(id uint) (*entity.PortionControl, error) {
	var p entity.PortionControl
	if err := r.DB.Preload("Items").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PortionRepository) List(productID uint) ([]entity.PortionControl, error) {
	q := r.DB.Preload("Items")
	if productID != 0 {
		q = q.Where("product_id = ?", productID)
	}
	var out []entity.PortionControl
	err := q.Order("name ASC").Find(&out).Error
	return out, err
}

func (r *PortionRepository) CreateItem(it *entity.PortionControlItem) error {
	return r.DB.Create(it).Error
}

func (r *PortionRepository) DeleteChildren(portionID uint) error {
	return r.DB.Unscoped().Where("portion_control_id = ?", portionID).Delete(&entity.PortionControlItem{}).Error
}
