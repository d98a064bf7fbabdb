package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/SuperEjay/pos-sub000/pkg/resp"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/SuperEjay/pos-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, order)
}

func (oc *OrderController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := oc.Service.Update(uint(id), &req)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Search: c.Query("q"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.To = &end
		}
	}

	out, err := oc.Service.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := oc.Service.Detail(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

func (oc *OrderController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := oc.Service.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /queue — the operational work-to-do view.
func (oc *OrderController) Queue(c *gin.Context) {
	out, err := oc.Service.Queue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	err := oc.Service.UpdateStatus(uint(id), req.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "order not found")
		return
	}
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "status": req.Status})
}

// POST /orders/preview — totals for the form, same math as persist.
func (oc *OrderController) Preview(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	totals, err := oc.Service.Preview(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, totals)
}
