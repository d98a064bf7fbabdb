package repository

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Omit("Variants", "Category").Create(p).Error
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.DB.Omit("Variants", "Category").Save(p).Error
}

func (r *ProductRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Product{}, id).Error
}

func (r *ProductRepository) Get(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.Preload("Variants.Options").Preload("Category").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

type ProductFilter struct {
	Search     string // matched against name, case-insensitive
	CategoryID uint
	ActiveOnly bool
	Page       int
	Limit      int
}

func (r *ProductRepository) List(f ProductFilter) ([]entity.Product, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}

	q := r.DB.Model(&entity.Product{})
	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Product
	err := q.Preload("Variants.Options").
		Order("name ASC").
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&out).Error
	return out, total, err
}

func (r *ProductRepository) SetActive(id uint, active bool) (int64, error) {
	res := r.DB.Model(&entity.Product{}).Where("id = ?", id).Update("is_active", active)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Product{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Variants ----------------

func (r *ProductRepository) CreateVariant(v *entity.Variant) error {
	return r.DB.Omit("Options").Create(v).Error
}

func (r *ProductRepository) CreateVariantOption(o *entity.VariantOption) error {
	return r.DB.Create(o).Error
}

// DeleteChildren removes every variant and variant option of a product.
func (r *ProductRepository) DeleteChildren(productID uint) error {
	var variantIDs []uint
	if err := r.DB.Model(&entity.Variant{}).
		Where("product_id = ?", productID).Pluck("id", &variantIDs).Error; err != nil {
		return err
	}
	if len(variantIDs) > 0 {
		if err := r.DB.Unscoped().
			Where("variant_id IN ?", variantIDs).
			Delete(&entity.VariantOption{}).Error; err != nil {
			return err
		}
	}
	return r.DB.Unscoped().Where("product_id = ?", productID).Delete(&entity.Variant{}).Error
}

// ---------------- Categories ----------------

func (r *ProductRepository) ListCategories() ([]entity.ProductCategory, error) {
	var out []entity.ProductCategory
	err := r.DB.Order("category_name ASC").Find(&out).Error
	return out, err
}
