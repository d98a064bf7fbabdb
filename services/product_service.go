package services

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/pkg/saga"
	"github.com/SuperEjay/pos-sub000/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProductService struct {
	Repo *repository.ProductRepository
	Log  *zap.Logger
}

func NewProductService(repo *repository.ProductRepository, log *zap.Logger) *ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{Repo: repo, Log: log}
}

// ----- DTOs from Controller -----

type VariantOptionIn struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

type VariantIn struct {
	Name    string            `json:"name" binding:"required"`
	Price   int64             `json:"price"`
	Stock   int               `json:"stock"`
	SKU     string            `json:"sku"`
	Options []VariantOptionIn `json:"options"`
}

type CreateProductReq struct {
	Name        string      `json:"name" binding:"required"`
	Description string      `json:"description"`
	CategoryID  uint        `json:"categoryId"`
	SKU         string      `json:"sku"`
	Price       int64       `json:"price"`
	Stock       int         `json:"stock"`
	IsActive    *bool       `json:"isActive"`
	ImageURL    string      `json:"imageUrl"`
	Variants    []VariantIn `json:"variants"`
}

func (s *ProductService) writeVariants(productID uint, variants []VariantIn) error {
	for _, v := range variants {
		row := entity.Variant{
			ProductID: productID,
			Name:      v.Name,
			Price:     v.Price,
			Stock:     v.Stock,
			SKU:       v.SKU,
		}
		if err := s.Repo.CreateVariant(&row); err != nil {
			return err
		}
		for i, opt := range v.Options {
			o := entity.VariantOption{
				VariantID: row.ID,
				Name:      opt.Name,
				Value:     opt.Value,
				SortOrder: i,
			}
			if err := s.Repo.CreateVariantOption(&o); err != nil {
				return err
			}
		}
	}
	return nil
}

// ----- Create -----

func (s *ProductService) Create(req *CreateProductReq) (*entity.Product, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	product := entity.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SKU:         req.SKU,
		Price:       req.Price,
		Stock:       req.Stock,
		IsActive:    active,
		ImageURL:    req.ImageURL,
	}

	w := &saga.AggregateWrite{
		WriteParent:   func() error { return s.Repo.Create(&product) },
		WriteChildren: func() error { return s.writeVariants(product.ID, req.Variants) },
		DeleteParent: func() error {
			if err := s.Repo.DeleteChildren(product.ID); err != nil {
				return err
			}
			return s.Repo.Delete(product.ID)
		},
		OnCompensationError: func(err error) {
			s.Log.Warn("product create compensation failed", zap.Uint("productId", product.ID), zap.Error(err))
		},
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(product.ID)
}

// ----- Update (full replace of variants) -----

func (s *ProductService) Update(id uint, req *CreateProductReq) (*entity.Product, error) {
	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.SKU = req.SKU
	existing.Price = req.Price
	existing.Stock = req.Stock
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if req.ImageURL != "" {
		existing.ImageURL = req.ImageURL
	}
	existing.Variants = nil

	w := &saga.AggregateWrite{
		Editing:        true,
		WriteParent:    func() error { return s.Repo.Update(existing) },
		DeleteChildren: func() error { return s.Repo.DeleteChildren(id) },
		WriteChildren:  func() error { return s.writeVariants(id, req.Variants) },
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

// ----- List / Detail / Delete / Toggle -----

type ProductListOut struct {
	Items []entity.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

func (s *ProductService) List(f repository.ProductFilter) (*ProductListOut, error) {
	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, err
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return &ProductListOut{Items: items, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

func (s *ProductService) Detail(id uint) (*entity.Product, error) {
	return s.Repo.Get(id)
}

func (s *ProductService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteChildren(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *ProductService) SetActive(id uint, active bool) error {
	affected, err := s.Repo.SetActive(id, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ProductService) Categories() ([]entity.ProductCategory, error) {
	return s.Repo.ListCategories()
}
