package controllers

import (
	"errors"
	"strconv"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{Service: service}
}

func (pc *ProductController) Create(c *gin.Context) {
	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.Service.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	product, err := pc.Service.Update(uint(id), &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

func (pc *ProductController) List(c *gin.Context) {
	f := repository.ProductFilter{
		Search:     c.Query("q"),
		ActiveOnly: c.Query("active") == "true",
	}
	if v, err := strconv.Atoi(c.Query("categoryId")); err == nil {
		f.CategoryID = uint(v)
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	out, err := pc.Service.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func (pc *ProductController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	product, err := pc.Service.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := pc.Service.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type SetActiveReq struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

func (pc *ProductController) SetActive(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SetActiveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := pc.Service.SetActive(uint(id), *req.IsActive)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "product not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "isActive": *req.IsActive})
}

func (pc *ProductController) Categories(c *gin.Context) {
	items, err := pc.Service.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
