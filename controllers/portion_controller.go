package controllers

import (
	"errors"
	"strconv"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PortionController struct {
	Service *services.PortionService
}

func NewPortionController(service *services.PortionService) *PortionController {
	return &PortionController{Service: service}
}

func (pc *PortionController) Create(c *gin.Context) {
	var req services.CreatePortionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	portion, err := pc.Service.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, portion)
}

func (pc *PortionController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CreatePortionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	portion, err := pc.Service.Update(uint(id), &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "portion control not found")
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, portion)
}

func (pc *PortionController) List(c *gin.Context) {
	var productID uint
	if v, err := strconv.Atoi(c.Query("productId")); err == nil {
		productID = uint(v)
	}
	items, err := pc.Service.List(productID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

func (pc *PortionController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	portion, err := pc.Service.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "portion control not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, portion)
}

func (pc *PortionController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := pc.Service.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "portion control not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
