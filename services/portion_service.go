package services

import (
	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/pkg/saga"
	"github.com/SuperEjay/pos-sub000/repository"
	"go.uber.org/zap"
)

type PortionService struct {
	Repo        *repository.PortionRepository
	ProductRepo *repository.ProductRepository
	Log         *zap.Logger
}

func NewPortionService(repo *repository.PortionRepository, productRepo *repository.ProductRepository, log *zap.Logger) *PortionService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PortionService{Repo: repo, ProductRepo: productRepo, Log: log}
}

// ----- DTOs from Controller -----

type PortionItemIn struct {
	IngredientProductID uint    `json:"ingredientProductId" binding:"required"`
	IngredientVariantID *uint   `json:"ingredientVariantId"`
	ServingSize         float64 `json:"servingSize"`
	Unit                string  `json:"unit"`
}

type CreatePortionReq struct {
	ProductID uint            `json:"productId" binding:"required"`
	VariantID *uint           `json:"variantId"`
	Name      string          `json:"name" binding:"required"`
	Items     []PortionItemIn `json:"items" binding:"required,min=1"`
}

func (s *PortionService) writeItems(portionID uint, items []PortionItemIn) error {
	for _, it := range items {
		row := entity.PortionControlItem{
			PortionControlID:    portionID,
			IngredientProductID: it.IngredientProductID,
			IngredientVariantID: it.IngredientVariantID,
			ServingSize:         it.ServingSize,
			Unit:                it.Unit,
		}
		if err := s.Repo.CreateItem(&row); err != nil {
			return err
		}
	}
	return nil
}

func (s *PortionService) checkProduct(productID uint) error {
	ok, err := s.ProductRepo.Exists(productID)
	if err != nil {
		return err
	}
	if !ok {
		return validationError("product not found")
	}
	return nil
}

func (s *PortionService) Create(req *CreatePortionReq) (*entity.PortionControl, error) {
	portion := entity.PortionControl{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Name:      req.Name,
	}

	w := &saga.AggregateWrite{
		Precheck:      func() error { return s.checkProduct(req.ProductID) },
		WriteParent:   func() error { return s.Repo.Create(&portion) },
		WriteChildren: func() error { return s.writeItems(portion.ID, req.Items) },
		DeleteParent: func() error {
			if err := s.Repo.DeleteChildren(portion.ID); err != nil {
				return err
			}
			return s.Repo.Delete(portion.ID)
		},
		OnCompensationError: func(err error) {
			s.Log.Warn("portion create compensation failed", zap.Uint("portionId", portion.ID), zap.Error(err))
		},
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(portion.ID)
}

func (s *PortionService) Update(id uint, req *CreatePortionReq) (*entity.PortionControl, error) {
	existing, err := s.Repo.Get(id)
	if err != nil {
		return nil, err
	}

	existing.ProductID = req.ProductID
	existing.VariantID = req.VariantID
	existing.Name = req.Name
	existing.Items = nil

	w := &saga.AggregateWrite{
		Editing:        true,
		Precheck:       func() error { return s.checkProduct(req.ProductID) },
		WriteParent:    func() error { return s.Repo.Update(existing) },
		DeleteChildren: func() error { return s.Repo.DeleteChildren(id) },
		WriteChildren:  func() error { return s.writeItems(id, req.Items) },
	}
	if _, err := w.Run(); err != nil {
		return nil, err
	}
	return s.Repo.Get(id)
}

func (s *PortionService) List(productID uint) ([]entity.PortionControl, error) {
	return s.Repo.List(productID)
}

func (s *PortionService) Detail(id uint) (*entity.PortionControl, error) {
	return s.Repo.Get(id)
}

func (s *PortionService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	if err := s.Repo.DeleteChildren(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
