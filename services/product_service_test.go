package services

import (
	"testing"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/repository"
)

func newProductService(t *testing.T) (*ProductService, *repository.ProductRepository) {
	t.Helper()
	repo := repository.NewProductRepository(newTestDB(t))
	return NewProductService(repo, nil), repo
}

func TestCreateProductWithVariants(t *testing.T) {
	svc, _ := newProductService(t)

	product, err := svc.Create(&CreateProductReq{
		Name:  "Milk Tea",
		SKU:   "MT-001",
		Price: 6000,
		Stock: 100,
		Variants: []VariantIn{
			{Name: "Large", Price: 7500, SKU: "MT-001-L", Options: []VariantOptionIn{
				{Name: "Size", Value: "22oz"},
				{Name: "Ice", Value: "regular"},
			}},
			{Name: "Regular", Price: 6000, SKU: "MT-001-R"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if !product.IsActive {
		t.Error("new product should default to active")
	}
	if len(product.Variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(product.Variants))
	}
	if len(product.Variants[0].Options) != 2 {
		t.Errorf("variant options = %d, want 2", len(product.Variants[0].Options))
	}
	if product.Variants[0].Options[0].SortOrder != 0 || product.Variants[0].Options[1].SortOrder != 1 {
		t.Error("variant options lost their order")
	}
}

func TestUpdateProductReplacesVariants(t *testing.T) {
	svc, repo := newProductService(t)

	created, err := svc.Create(&CreateProductReq{
		Name: "Milk Tea",
		Variants: []VariantIn{
			{Name: "Large", Options: []VariantOptionIn{{Name: "Size", Value: "22oz"}}},
			{Name: "Regular"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(created.ID, &CreateProductReq{
		Name:     "Milk Tea",
		Variants: []VariantIn{{Name: "Grande", Price: 8000}},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(updated.Variants) != 1 || updated.Variants[0].Name != "Grande" {
		t.Errorf("variants not fully replaced: %+v", updated.Variants)
	}

	var optCount int64
	repo.DB.Model(&entity.VariantOption{}).Count(&optCount)
	if optCount != 0 {
		t.Errorf("orphan variant options left behind = %d", optCount)
	}
}

func TestProductDetailPreloadsCategory(t *testing.T) {
	svc, repo := newProductService(t)

	cat := entity.ProductCategory{CategoryName: "Drinks"}
	if err := repo.DB.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	created, err := svc.Create(&CreateProductReq{Name: "Milk Tea", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Detail(created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.Category.CategoryName != "Drinks" {
		t.Errorf("category = %q, want Drinks", got.Category.CategoryName)
	}
}

func TestSetActiveToggle(t *testing.T) {
	svc, _ := newProductService(t)

	created, err := svc.Create(&CreateProductReq{Name: "Seasonal Float"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SetActive(created.ID, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	got, err := svc.Detail(created.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if got.IsActive {
		t.Error("product still active after deactivate")
	}

	if err := svc.SetActive(99999, true); err == nil {
		t.Error("missing product accepted")
	}
}

func TestDeleteProductRemovesVariantTree(t *testing.T) {
	svc, repo := newProductService(t)

	created, err := svc.Create(&CreateProductReq{
		Name: "Milk Tea",
		Variants: []VariantIn{
			{Name: "Large", Options: []VariantOptionIn{{Name: "Size", Value: "22oz"}}},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var variants, options int64
	repo.DB.Model(&entity.Variant{}).Where("product_id = ?", created.ID).Count(&variants)
	repo.DB.Model(&entity.VariantOption{}).Count(&options)
	if variants != 0 || options != 0 {
		t.Errorf("variant tree left behind: %d variants, %d options", variants, options)
	}
}
